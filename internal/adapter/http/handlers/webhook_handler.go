package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grupo95-symposium/registration-service/internal/usecase"
	"github.com/grupo95-symposium/registration-service/pkg"
)

const gatewaySignatureHeader = "x-gateway-signature"

// WebhookHandler receives asynchronous gateway callbacks.
//
// The raw body is read before any parsing because the signature covers the
// exact bytes on the wire. After the signature passes, business conditions
// are acknowledged with 200 so the gateway does not retry-storm; only
// storage failures return 5xx to trigger the gateway's redelivery.

type WebhookHandler struct {
	reconcile usecase.IReconcileUseCase
}

func NewWebhookHandler(reconcile usecase.IReconcileUseCase) *WebhookHandler {
	return &WebhookHandler{reconcile: reconcile}
}

func (h *WebhookHandler) Webhook(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	signature := c.GetHeader(gatewaySignatureHeader)
	if err := h.reconcile.HandleWebhook(c.Request.Context(), rawBody, signature); err != nil {
		if errors.Is(err, usecase.ErrInvalidWebhookSignature) {
			// audit-logged in the usecase; the expected value never leaves the server
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[webhook][handler] processing failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Webhook processing failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
