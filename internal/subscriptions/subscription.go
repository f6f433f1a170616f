package subscriptions

import (
	"time"

	"subscription-server/internal/store"
)

// Provider identifies a known external payment provider.
type Provider string

const (
	ProviderGoogle Provider = "GOOGLE"
	ProviderApple  Provider = "APPLE"
)

// ParseProvider matches a raw token against the known providers.
// Matching is case-sensitive.
func ParseProvider(token string) (Provider, bool) {
	switch Provider(token) {
	case ProviderGoogle:
		return ProviderGoogle, true
	case ProviderApple:
		return ProviderApple, true
	}
	return "", false
}

// Status is the lifecycle state of a subscription.
// CANCELED and EXPIRED are terminal.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusCanceled Status = "CANCELED"
	StatusExpired  Status = "EXPIRED"
)

type Subscription struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	Provider       Provider  `json:"provider"`
	ExpirationDate time.Time `json:"expiration_date"`
	Status         Status    `json:"status"`
}

// CreateSubscriptionRequest is the untrusted input for Upsert. Pointer fields
// distinguish absent values from zero values; absence is a validation error.
type CreateSubscriptionRequest struct {
	UserID         *int64
	Name           string
	Provider       string
	ExpirationDate *time.Time
}

func toStoreSubscription(s Subscription) store.Subscription {
	return store.Subscription{
		ID:             s.ID,
		UserID:         s.UserID,
		Name:           s.Name,
		Provider:       string(s.Provider),
		ExpirationDate: s.ExpirationDate,
		Status:         string(s.Status),
	}
}

// fromStoreSubscription trusts persisted provider/status values: the schema
// constrains them to the enum names.
func fromStoreSubscription(m store.Subscription) Subscription {
	return Subscription{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Provider:       Provider(m.Provider),
		ExpirationDate: m.ExpirationDate,
		Status:         Status(m.Status),
	}
}
