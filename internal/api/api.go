package api

import (
	"net/http"

	subscriptionHandler "subscription-server/internal/subscriptions/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	subscriptionHandler subscriptionHandler.Handler
}

func New(router *gin.RouterGroup, subscriptionHandler subscriptionHandler.Handler) API {
	return API{
		router:              router,
		subscriptionHandler: subscriptionHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		subscriptionGroup := apiGroup.Group("/subscriptions")
		subscriptionGroup.POST("", a.subscriptionHandler.HandleUpsertSubscription)
		subscriptionGroup.GET("", a.subscriptionHandler.HandleListSubscriptions)
		subscriptionGroup.GET("/:id", a.subscriptionHandler.HandleGetSubscription)
		subscriptionGroup.POST("/:id/cancel", a.subscriptionHandler.HandleCancelSubscription)
		subscriptionGroup.POST("/:id/expire", a.subscriptionHandler.HandleExpireSubscription)
		subscriptionGroup.DELETE("/:id", a.subscriptionHandler.HandleDeleteSubscription)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
