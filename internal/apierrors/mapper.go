package apierrors

import (
	"errors"

	"subscription-server/internal/store"
	"subscription-server/internal/subscriptions"

	"github.com/gin-gonic/gin"
)

// HandleError converts domain errors into transport responses.
// This centralizes the mapping so every handler returns consistent statuses:
// validation failures are 400, missing records 404, illegal transitions and
// storage constraint violations 409, anything unknown a sanitized 500.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErr *subscriptions.ValidationError
	if errors.As(err, &validationErr) {
		ValidationFailed(c, validationErr.Errors)
		return
	}

	var stateErr *subscriptions.StateError
	if errors.As(err, &stateErr) {
		Conflict(c, "SUBSCRIPTION_NOT_ACTIVE", stateErr.Error())
		return
	}

	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "subscription not found")
		return
	}

	if errors.Is(err, store.ErrConflict) {
		Conflict(c, "CONSTRAINT_VIOLATION", "subscription violates a uniqueness constraint")
		return
	}

	InternalError(c, err)
}
