package handler

import (
	"net/http"
	"strconv"
	"time"

	"subscription-server/internal/apierrors"
	"subscription-server/internal/observability"
	"subscription-server/internal/subscriptions"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service subscriptions.SubscriptionServiceInterface
	logger  *observability.Logger
}

func New(service subscriptions.SubscriptionServiceInterface, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

// UpsertSubscriptionRequest carries the untrusted upsert input. Fields are
// deliberately unconstrained at the binding layer: structural validation with
// stable error codes happens in the service.
type UpsertSubscriptionRequest struct {
	UserID         *int64     `json:"user_id"`
	Name           string     `json:"name"`
	Provider       string     `json:"provider"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

func (h *Handler) HandleUpsertSubscription(c *gin.Context) {
	ctx := c.Request.Context()
	var req UpsertSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		apierrors.BadRequest(c, "INVALID_INPUT", "invalid request")
		return
	}

	subscription, err := h.service.Upsert(ctx, subscriptions.CreateSubscriptionRequest{
		UserID:         req.UserID,
		Name:           req.Name,
		Provider:       req.Provider,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

func (h *Handler) HandleCancelSubscription(c *gin.Context) {
	id, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleExpireSubscription(c *gin.Context) {
	id, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	if err := h.service.Expire(c.Request.Context(), id); err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleGetSubscription(c *gin.Context) {
	id, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	subscription, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

func (h *Handler) HandleListSubscriptions(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": result})
}

func (h *Handler) HandleDeleteSubscription(c *gin.Context) {
	id, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		apierrors.HandleError(c, err)
		return
	}
	if !deleted {
		apierrors.NotFound(c, "subscription not found")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) subscriptionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error(c.Request.Context(), "invalid subscription id", err)
		apierrors.BadRequest(c, "INVALID_ID", "subscription id must be an integer")
		return 0, false
	}
	return id, true
}
