package subscriptions

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=subscriptions

import (
	"context"
	"errors"
	"fmt"

	"subscription-server/internal/observability"
	"subscription-server/internal/store"
)

// SubscriptionStore is the data-access contract the service depends on.
// Writes are synchronous and constraint-enforcing: uniqueness breaches
// surface as store.ErrConflict and are propagated unmodified. The service
// performs no locking of its own; callers needing stronger guarantees under
// concurrent writes for the same user or identifier must serialize at the
// storage layer.
type SubscriptionStore interface {
	ListSubscriptions(ctx context.Context) ([]store.Subscription, error)
	GetSubscriptionByID(ctx context.Context, id int64) (store.Subscription, error)
	GetSubscriptionsByUserID(ctx context.Context, userID int64) ([]store.Subscription, error)
	InsertSubscription(ctx context.Context, subscription store.Subscription) (store.Subscription, error)
	UpdateSubscription(ctx context.Context, subscription store.Subscription) (store.Subscription, error)
	UpsertSubscription(ctx context.Context, subscription store.Subscription) (store.Subscription, error)
	DeleteSubscription(ctx context.Context, id int64) (bool, error)
}

// Upsert validates the request, then creates a subscription for the user or
// replaces the existing one in place. The upsert is keyed by the owning user:
// when the user already has a subscription its identifier is preserved and
// every mutable field is overwritten from the request.
func (s *SubscriptionService) Upsert(ctx context.Context, req CreateSubscriptionRequest) (Subscription, error) {
	if result := s.validator.Validate(req); result.HasErrors() {
		return Subscription{}, &ValidationError{Errors: result.Errors()}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: *req.UserID})

	existing, err := s.store.GetSubscriptionsByUserID(ctx, *req.UserID)
	if err != nil {
		s.logger.Error(ctx, "error looking up subscriptions by user", err)
		return Subscription{}, fmt.Errorf("error looking up subscriptions by user: %w", err)
	}

	subscription := s.mapper.Map(req)
	if len(existing) > 0 {
		subscription.ID = existing[0].ID
	}

	persisted, err := s.store.UpsertSubscription(ctx, toStoreSubscription(subscription))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return Subscription{}, err
		}
		s.logger.Error(ctx, "error upserting subscription", err)
		return Subscription{}, fmt.Errorf("error upserting subscription: %w", err)
	}

	return fromStoreSubscription(persisted), nil
}

// Cancel transitions an ACTIVE subscription to CANCELED. Canceling a
// subscription in any other state fails with a StateError; CANCELED is
// terminal, so repeating the call fails rather than succeeding silently.
func (s *SubscriptionService) Cancel(ctx context.Context, id int64) error {
	return s.transition(ctx, id, StatusCanceled)
}

// Expire transitions an ACTIVE subscription to EXPIRED. EXPIRED is terminal.
func (s *SubscriptionService) Expire(ctx context.Context, id int64) error {
	return s.transition(ctx, id, StatusExpired)
}

func (s *SubscriptionService) transition(ctx context.Context, id int64, target Status) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: id})

	existing, err := s.store.GetSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "error getting subscription", err)
		return fmt.Errorf("error getting subscription: %w", err)
	}

	if Status(existing.Status) != StatusActive {
		return &StateError{ID: id, Status: Status(existing.Status)}
	}

	existing.Status = string(target)
	// Full-record overwrite, not a partial patch.
	if _, err := s.store.UpdateSubscription(ctx, existing); err != nil {
		s.logger.Error(ctx, "error updating subscription status", err)
		return fmt.Errorf("error updating subscription status: %w", err)
	}

	return nil
}

// GetByID retrieves a single subscription.
func (s *SubscriptionService) GetByID(ctx context.Context, id int64) (Subscription, error) {
	existing, err := s.store.GetSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Subscription{}, err
		}
		s.logger.Error(ctx, "error getting subscription", err)
		return Subscription{}, fmt.Errorf("error getting subscription: %w", err)
	}
	return fromStoreSubscription(existing), nil
}

// List retrieves every subscription.
func (s *SubscriptionService) List(ctx context.Context) ([]Subscription, error) {
	records, err := s.store.ListSubscriptions(ctx)
	if err != nil {
		s.logger.Error(ctx, "error listing subscriptions", err)
		return nil, fmt.Errorf("error listing subscriptions: %w", err)
	}
	subscriptions := make([]Subscription, 0, len(records))
	for _, m := range records {
		subscriptions = append(subscriptions, fromStoreSubscription(m))
	}
	return subscriptions, nil
}

// Delete removes a subscription and reports whether one existed.
func (s *SubscriptionService) Delete(ctx context.Context, id int64) (bool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: id})
	deleted, err := s.store.DeleteSubscription(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "error deleting subscription", err)
		return false, fmt.Errorf("error deleting subscription: %w", err)
	}
	return deleted, nil
}
