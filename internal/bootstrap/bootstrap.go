package bootstrap

import (
	"context"
	"fmt"

	"subscription-server/internal/config"
	"subscription-server/internal/observability"
	"subscription-server/internal/store"
	"subscription-server/internal/subscriptions"
	subscriptionHandler "subscription-server/internal/subscriptions/handler"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Store  store.Store
	Logger *observability.Logger

	SubscriptionService *subscriptions.SubscriptionService
	SubscriptionHandler subscriptionHandler.Handler
}

// Init wires the application dependency graph
func Init(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	subscriptionService := subscriptions.New(
		&dataStore,
		subscriptions.NewValidator(nil),
		subscriptions.NewMapper(),
		logger,
	)

	deps := &Dependencies{
		Store:               dataStore,
		Logger:              logger,
		SubscriptionService: subscriptionService,
		SubscriptionHandler: subscriptionHandler.New(subscriptionService, logger),
	}

	logger.Info(ctx, "Dependencies initialized")
	return deps, nil
}

// Cleanup releases resources held by the dependency graph
func (d *Dependencies) Cleanup() {
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close store", err)
	}
}
