package subscriptions

import "context"

// SubscriptionServiceInterface defines the contract for subscription-related operations
type SubscriptionServiceInterface interface {
	Upsert(ctx context.Context, req CreateSubscriptionRequest) (Subscription, error)
	Cancel(ctx context.Context, id int64) error
	Expire(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Subscription, error)
	List(ctx context.Context) ([]Subscription, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
