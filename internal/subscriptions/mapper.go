package subscriptions

// Mapper translates a validated CreateSubscriptionRequest into a new
// Subscription. It assumes the request already passed validation and does not
// re-validate.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// Map builds a new ACTIVE subscription from the request. The identifier is
// left unset; storage assigns it on insert.
func (m *Mapper) Map(req CreateSubscriptionRequest) Subscription {
	provider, _ := ParseProvider(req.Provider)
	return Subscription{
		UserID:         *req.UserID,
		Name:           req.Name,
		Provider:       provider,
		ExpirationDate: *req.ExpirationDate,
		Status:         StatusActive,
	}
}
