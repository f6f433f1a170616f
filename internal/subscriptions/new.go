package subscriptions

import (
	"subscription-server/internal/observability"
)

type SubscriptionService struct {
	logger    *observability.Logger
	store     SubscriptionStore
	validator *Validator
	mapper    *Mapper
}

func New(store SubscriptionStore, validator *Validator, mapper *Mapper, logger *observability.Logger) *SubscriptionService {
	return &SubscriptionService{
		logger:    logger,
		store:     store,
		validator: validator,
		mapper:    mapper,
	}
}
