package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type Subscription struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	Name           string    `db:"name"`
	Provider       string    `db:"provider"`
	ExpirationDate time.Time `db:"expiration_date"`
	Status         string    `db:"status"`
}

const sqlListSubscriptions = `
SELECT id, user_id, name, provider, expiration_date, status
FROM subscriptions
`

// ListSubscriptions retrieves every subscription in the database.
func (s *Store) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var subscriptions []Subscription
	err := s.db.SelectContext(ctx, &subscriptions, sqlListSubscriptions)
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

const sqlGetSubscriptionByID = `
SELECT id, user_id, name, provider, expiration_date, status
FROM subscriptions
WHERE id = $1
`

// GetSubscriptionByID retrieves a single subscription by its identifier.
func (s *Store) GetSubscriptionByID(ctx context.Context, id int64) (Subscription, error) {
	var subscription Subscription
	err := s.db.GetContext(ctx, &subscription, sqlGetSubscriptionByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, err
	}
	return subscription, nil
}

const sqlGetSubscriptionsByUserID = `
SELECT id, user_id, name, provider, expiration_date, status
FROM subscriptions
WHERE user_id = $1
`

// GetSubscriptionsByUserID retrieves all subscriptions owned by a user.
// The result is unordered and may be empty.
func (s *Store) GetSubscriptionsByUserID(ctx context.Context, userID int64) ([]Subscription, error) {
	var subscriptions []Subscription
	err := s.db.SelectContext(ctx, &subscriptions, sqlGetSubscriptionsByUserID, userID)
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

const sqlInsertSubscription = `
INSERT INTO subscriptions (user_id, name, provider, expiration_date, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, name, provider, expiration_date, status
`

// InsertSubscription creates a new subscription and returns it with the
// identifier assigned by the database.
func (s *Store) InsertSubscription(ctx context.Context, subscription Subscription) (Subscription, error) {
	var inserted Subscription
	err := s.db.QueryRowxContext(ctx, sqlInsertSubscription,
		subscription.UserID,
		subscription.Name,
		subscription.Provider,
		subscription.ExpirationDate,
		subscription.Status).StructScan(&inserted)
	if err != nil {
		if isUniqueViolation(err) {
			return Subscription{}, ErrConflict
		}
		return Subscription{}, err
	}
	return inserted, nil
}

const sqlUpdateSubscription = `
UPDATE subscriptions
SET user_id = $1, name = $2, provider = $3, expiration_date = $4, status = $5
WHERE id = $6
RETURNING id, user_id, name, provider, expiration_date, status
`

// UpdateSubscription overwrites the full record identified by its id.
func (s *Store) UpdateSubscription(ctx context.Context, subscription Subscription) (Subscription, error) {
	var updated Subscription
	err := s.db.QueryRowxContext(ctx, sqlUpdateSubscription,
		subscription.UserID,
		subscription.Name,
		subscription.Provider,
		subscription.ExpirationDate,
		subscription.Status,
		subscription.ID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return Subscription{}, ErrConflict
		}
		return Subscription{}, err
	}
	return updated, nil
}

// UpsertSubscription inserts the subscription when its identifier is unset
// and updates the existing record otherwise.
func (s *Store) UpsertSubscription(ctx context.Context, subscription Subscription) (Subscription, error) {
	if subscription.ID == 0 {
		return s.InsertSubscription(ctx, subscription)
	}
	return s.UpdateSubscription(ctx, subscription)
}

const sqlDeleteSubscription = `
DELETE FROM subscriptions
WHERE id = $1
`

// DeleteSubscription removes a subscription and reports whether a row matched.
func (s *Store) DeleteSubscription(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, sqlDeleteSubscription, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
