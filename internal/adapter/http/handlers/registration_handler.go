package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/grupo95-symposium/registration-service/internal/adapter/http/dto/request"
	"github.com/grupo95-symposium/registration-service/internal/adapter/http/dto/response"
	"github.com/grupo95-symposium/registration-service/internal/adapter/http/middleware"
	"github.com/grupo95-symposium/registration-service/internal/usecase"
	"github.com/grupo95-symposium/registration-service/pkg"
)

var errMissingPrincipal = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// RegistrationHandler handles HTTP requests for event registrations.

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// Create registers the caller (or their team) for an event. Idempotent per
// (event, caller): a repeated submission returns the existing record with a
// recomputed payment requirement.
func (h *RegistrationHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[registration][handler] invalid payload owner=%s err=%v", principal.AccountID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "eventId and type are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[registration][handler] create start event=%s owner=%s type=%s", payload.EventID, principal.AccountID, payload.Type)
	outcome, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(principal.AccountID, principal.Email))
	if err != nil {
		log.Printf("[registration][handler] create failed event=%s owner=%s err=%v", payload.EventID, principal.AccountID, err)
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if outcome.Existing {
		status = http.StatusOK
	}
	log.Printf("[registration][handler] create success reg=%s status=%s needs_payment=%t", outcome.Registration.ID, outcome.Registration.Status, outcome.Payment.NeedsPayment)
	c.JSON(status, response.FromRegistrationOutcome(outcome, os.Getenv("RAZORPAY_KEY_ID")))
}

// ListMine returns the caller's registrations, newest first.
func (h *RegistrationHandler) ListMine(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	regs, err := h.usecase.ListByOwner(c.Request.Context(), principal.AccountID)
	if err != nil {
		log.Printf("[registration][handler] list failed owner=%s err=%v", principal.AccountID, err)
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegistrations(regs))
}

// GetByID returns one registration to its owner or an admin.
func (h *RegistrationHandler) GetByID(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	reg, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if reg.OwnerAccountID != principal.AccountID && !principal.IsAdmin() {
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "registration": response.FromRegistration(reg)})
}

// CheckoutAck stores a client-side checkout acknowledgement for audit.
// It never marks anything paid; reconciliation is the source of truth.
func (h *RegistrationHandler) CheckoutAck(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.CheckoutAckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reg, err := h.usecase.CheckoutAck(c.Request.Context(), c.Param("id"), principal.AccountID, payload.ToHistoryData())
	if err != nil {
		log.Printf("[registration][handler] checkout-ack failed reg=%s owner=%s err=%v", c.Param("id"), principal.AccountID, err)
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "registration": response.FromRegistration(reg)})
}

func mapRegistrationError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", vErr.Error(), http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotRegistrationOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
