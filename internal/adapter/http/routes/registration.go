package routes

import (
	"github.com/grupo95-symposium/registration-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRegistrations = "/registrations"
	PathEntryFees     = "/entry-fees"
	PathPayments      = "/payments"
)

func addRegistrationRoutes(rg *gin.RouterGroup, registrationHandler *handlers.RegistrationHandler) {
	registrations := rg.Group(PathRegistrations)
	{
		registrations.POST("", registrationHandler.Create)
		registrations.GET("", registrationHandler.ListMine)
		registrations.GET("/:id", registrationHandler.GetByID)
		registrations.POST("/:id/checkout-ack", registrationHandler.CheckoutAck)
	}
}

func addEntryFeeRoutes(rg *gin.RouterGroup, entryFeeHandler *handlers.EntryFeeHandler) {
	fees := rg.Group(PathEntryFees)
	{
		fees.GET("/status", entryFeeHandler.Status)
		fees.POST("/order", entryFeeHandler.CreateOrder)
		fees.POST("/verify", entryFeeHandler.Verify)
	}
}

// The webhook is signed by the gateway, not by a user token, so it stays
// outside the authenticated group.
func addPaymentRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/webhook", webhookHandler.Webhook)
	}
}
