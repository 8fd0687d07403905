package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grupo95-symposium/registration-service/internal/adapter/http/dto/request"
	"github.com/grupo95-symposium/registration-service/internal/adapter/http/dto/response"
	"github.com/grupo95-symposium/registration-service/internal/adapter/http/middleware"
	"github.com/grupo95-symposium/registration-service/internal/usecase"
	"github.com/grupo95-symposium/registration-service/pkg"
)

// EntryFeeHandler handles the entry-fee flows not tied to one registration:
// paid-status lookup, standalone orders, and client-side verification.

type EntryFeeHandler struct {
	fees      usecase.IEntryFeeUseCase
	reconcile usecase.IReconcileUseCase
}

func NewEntryFeeHandler(fees usecase.IEntryFeeUseCase, reconcile usecase.IReconcileUseCase) *EntryFeeHandler {
	return &EntryFeeHandler{fees: fees, reconcile: reconcile}
}

// Status reports who has already paid the one-time fee. The caller is always
// included; extra e-mails come comma-separated in ?emails=.
func (h *EntryFeeHandler) Status(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var extra []string
	if raw := strings.TrimSpace(c.Query("emails")); raw != "" {
		extra = strings.Split(raw, ",")
	}

	statuses, err := h.fees.Status(c.Request.Context(), principal.Email, extra)
	if err != nil {
		log.Printf("[entryfee][handler] status failed caller=%s err=%v", principal.AccountID, err)
		appErr := mapEntryFeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEntryFeeStatuses(statuses))
}

// CreateOrder opens a gateway order covering every unpaid person among the
// caller plus the listed e-mails.
func (h *EntryFeeHandler) CreateOrder(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	// an empty body means "just me"; anything unparseable is rejected
	var payload request.EntryFeeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[entryfee][handler] order start payer=%s extra=%d", principal.AccountID, len(payload.Emails))
	order, err := h.fees.CreateOrder(c.Request.Context(), principal.AccountID, principal.Email, payload.Emails)
	if err != nil {
		log.Printf("[entryfee][handler] order failed payer=%s err=%v", principal.AccountID, err)
		appErr := mapEntryFeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if !order.NeedsPayment {
		status = http.StatusOK
	}
	log.Printf("[entryfee][handler] order done payer=%s needs_payment=%t order_id=%s", principal.AccountID, order.NeedsPayment, order.GatewayOrderID)
	c.JSON(status, response.FromEntryFeeOrder(order, os.Getenv("RAZORPAY_KEY_ID")))
}

// Verify reconciles a client-submitted checkout result. Idempotent: replays
// return the already-converged state.
func (h *EntryFeeHandler) Verify(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "gatewayOrderId, gatewayPaymentId and signature are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[entryfee][handler] verify start caller=%s order_id=%s", principal.AccountID, payload.GatewayOrderID)
	result, err := h.reconcile.VerifyPayment(c.Request.Context(), payload.GatewayOrderID, payload.GatewayPaymentID, payload.Signature)
	if err != nil {
		log.Printf("[entryfee][handler] verify failed caller=%s order_id=%s err=%v", principal.AccountID, payload.GatewayOrderID, err)
		appErr := mapEntryFeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[entryfee][handler] verify success order_id=%s already_paid=%t covered=%d", payload.GatewayOrderID, result.AlreadyPaid, len(result.CoveredEmails))
	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

func mapEntryFeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid payment signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentOrderNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_ORDER_NOT_FOUND", "Payment order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
