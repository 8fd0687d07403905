package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotRegistrationOwner = errors.New("not the registration owner")
)

// ValidationError is a request-level problem with field detail. Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CreateRegistrationCommand is the resolved input for one create attempt.
type CreateRegistrationCommand struct {
	AccountID string
	Email     string
	EventRef  string
	EventName string
	Kind      entities.RegistrationKind
	TeamName  string
	Members   []entities.TeamMember
	Notes     string
}

// PaymentRequirement tells the client whether (and what) to pay.
type PaymentRequirement struct {
	NeedsPayment   bool
	AmountPaise    int64
	Currency       string
	GatewayOrderID string
	Breakdown      *FeeBreakdown
}

// RegistrationOutcome is the result of a create attempt. Existing is true
// when the idempotency check returned a previously created record.
type RegistrationOutcome struct {
	Registration entities.Registration
	Payment      PaymentRequirement
	Existing     bool
}

// IRegistrationUseCase orchestrates the payment-gated registration flow.

type IRegistrationUseCase interface {
	Create(ctx context.Context, cmd CreateRegistrationCommand) (RegistrationOutcome, error)
	ListByOwner(ctx context.Context, ownerAccountID string) ([]entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	CheckoutAck(ctx context.Context, id, ownerAccountID string, data map[string]interface{}) (entities.Registration, error)
}

type RegistrationUseCase struct {
	regs    interfaces.IRegistrationRepository
	ledger  *EntryFeeLedger
	intents *PaymentIntentService
	pricing PricingConfig
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(regs interfaces.IRegistrationRepository, ledger *EntryFeeLedger, intents *PaymentIntentService, pricing PricingConfig) *RegistrationUseCase {
	return &RegistrationUseCase{regs: regs, ledger: ledger, intents: intents, pricing: pricing}
}

// Create registers the caller (or their team) for an event.
//
// Idempotent per (event, owner): a retry returns the existing active record
// with a freshly computed payment requirement instead of creating a
// duplicate. The gateway order is created before the registration document is
// written, so an order-creation failure leaves no partial state at all.
func (u *RegistrationUseCase) Create(ctx context.Context, cmd CreateRegistrationCommand) (RegistrationOutcome, error) {
	log.Printf("[registration][usecase] create start event=%s owner=%s kind=%s", cmd.EventRef, cmd.AccountID, cmd.Kind)
	if err := validateCreateCommand(&cmd); err != nil {
		log.Printf("[registration][usecase] create rejected event=%s owner=%s err=%v", cmd.EventRef, cmd.AccountID, err)
		return RegistrationOutcome{}, err
	}

	// 1) idempotency: an active registration wins over a fresh create
	existing, err := u.regs.FindActive(ctx, cmd.EventRef, cmd.AccountID)
	if err != nil {
		return RegistrationOutcome{}, err
	}
	if existing.ID != "" {
		log.Printf("[registration][usecase] existing active registration returned reg=%s event=%s owner=%s", existing.ID, cmd.EventRef, cmd.AccountID)
		return RegistrationOutcome{Registration: existing, Payment: requirementFor(existing), Existing: true}, nil
	}

	// 2) who does the one-time fee have to cover
	covered := coveredEmails(cmd)
	_, unpaid, err := u.ledger.Partition(ctx, covered)
	if err != nil {
		return RegistrationOutcome{}, err
	}

	now := time.Now().UTC()
	regID := uuid.NewString()

	// 3) everyone paid already: confirm for free, nothing to charge
	if len(unpaid) == 0 {
		reg := newRegistration(regID, cmd, now)
		reg.Status = entities.RegistrationStatusConfirmed
		reg.Payment = entities.PaymentSummary{
			Method:   "none",
			Currency: DefaultCurrency,
			Status:   entities.PaymentStatePaid,
		}
		reg.AppendHistory("order_created", now, map[string]interface{}{
			"amount_paise": int64(0),
			"reason":       "all_paid",
		})

		created, err := u.createOrRecover(ctx, reg, cmd)
		if err != nil {
			return RegistrationOutcome{}, err
		}
		log.Printf("[registration][usecase] confirmed free reg=%s event=%s covered=%d", created.Registration.ID, cmd.EventRef, len(covered))
		return created, nil
	}

	// 4) open a gateway order for exactly the unpaid heads
	breakdown := ComputePricing(u.pricing, len(unpaid))
	intent, err := u.intents.CreateIntent(ctx, CreateIntentParams{
		PayerAccountID:  cmd.AccountID,
		RegistrationRef: regID,
		Kind:            entities.IntentKindEntryFee,
		CoveredEmails:   unpaid,
		AmountPaise:     breakdown.Totals.TotalPaise,
		Currency:        DefaultCurrency,
		Receipt:         fmt.Sprintf("reg_%s_%d", regID[:8], now.Unix()),
		Notes: map[string]string{
			"registration_id": regID,
			"leader_email":    cmd.Email,
			"unpaid_count":    strconv.Itoa(len(unpaid)),
		},
	})
	if err != nil {
		return RegistrationOutcome{}, err
	}

	reg := newRegistration(regID, cmd, now)
	reg.Payment = entities.PaymentSummary{
		Method:         "gateway",
		Currency:       intent.Currency,
		AmountPaise:    intent.AmountPaise,
		Status:         entities.PaymentStatePending,
		GatewayOrderID: intent.GatewayOrderID,
	}
	reg.AppendHistory("order_created", now, map[string]interface{}{
		"order_id":      intent.GatewayOrderID,
		"amount_paise":  intent.AmountPaise,
		"unpaid_emails": unpaid,
	})

	created, err := u.createOrRecover(ctx, reg, cmd)
	if err != nil {
		return RegistrationOutcome{}, err
	}
	if created.Existing {
		return created, nil
	}

	log.Printf("[registration][usecase] pending payment reg=%s order_id=%s amount_paise=%d unpaid=%d", created.Registration.ID, intent.GatewayOrderID, intent.AmountPaise, len(unpaid))
	created.Payment = PaymentRequirement{
		NeedsPayment:   true,
		AmountPaise:    intent.AmountPaise,
		Currency:       intent.Currency,
		GatewayOrderID: intent.GatewayOrderID,
		Breakdown:      &breakdown,
	}
	return created, nil
}

// createOrRecover writes the registration, resolving a lost duplicate race by
// re-reading the winner's record. The intent created for the losing attempt
// (if any) stays in created status and is never reconciled; harmless.
func (u *RegistrationUseCase) createOrRecover(ctx context.Context, reg entities.Registration, cmd CreateRegistrationCommand) (RegistrationOutcome, error) {
	created, err := u.regs.Create(ctx, reg)
	if err == nil {
		return RegistrationOutcome{Registration: created, Payment: requirementFor(created)}, nil
	}
	if !errors.Is(err, interfaces.ErrActiveRegistrationExists) {
		return RegistrationOutcome{}, err
	}

	log.Printf("[registration][usecase] duplicate race recovered event=%s owner=%s", cmd.EventRef, cmd.AccountID)
	winner, ferr := u.regs.FindActive(ctx, cmd.EventRef, cmd.AccountID)
	if ferr != nil {
		return RegistrationOutcome{}, ferr
	}
	if winner.ID == "" {
		return RegistrationOutcome{}, err
	}
	return RegistrationOutcome{Registration: winner, Payment: requirementFor(winner), Existing: true}, nil
}

// ListByOwner returns the caller's registrations, newest first.
func (u *RegistrationUseCase) ListByOwner(ctx context.Context, ownerAccountID string) ([]entities.Registration, error) {
	return u.regs.ListByOwner(ctx, ownerAccountID)
}

func (u *RegistrationUseCase) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	reg, err := u.regs.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if reg.ID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	return reg, nil
}

// CheckoutAck appends a client-side checkout acknowledgement to the audit
// history. Stored but not trusted: it never marks anything paid, the
// webhook/verify reconciliation remains the source of truth.
func (u *RegistrationUseCase) CheckoutAck(ctx context.Context, id, ownerAccountID string, data map[string]interface{}) (entities.Registration, error) {
	reg, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if reg.OwnerAccountID != ownerAccountID {
		return entities.Registration{}, ErrNotRegistrationOwner
	}

	now := time.Now().UTC()
	reg.AppendHistory("checkout_ack", now, data)
	reg.UpdatedAt = now
	return u.regs.Update(ctx, reg)
}

func newRegistration(id string, cmd CreateRegistrationCommand, now time.Time) entities.Registration {
	reg := entities.Registration{
		ID:             id,
		EventRef:       cmd.EventRef,
		EventName:      cmd.EventName,
		OwnerAccountID: cmd.AccountID,
		OwnerEmail:     strings.ToLower(cmd.Email),
		Kind:           cmd.Kind,
		Status:         entities.RegistrationStatusPending,
		Notes:          cmd.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if cmd.Kind == entities.RegistrationKindTeam {
		reg.TeamName = cmd.TeamName
		reg.TeamMembers = cmd.Members
	}
	return reg
}

// requirementFor recomputes the payment requirement for an existing record.
func requirementFor(reg entities.Registration) PaymentRequirement {
	if reg.Payment.Status == entities.PaymentStatePending && reg.Payment.GatewayOrderID != "" {
		return PaymentRequirement{
			NeedsPayment:   true,
			AmountPaise:    reg.Payment.AmountPaise,
			Currency:       reg.Payment.Currency,
			GatewayOrderID: reg.Payment.GatewayOrderID,
		}
	}
	return PaymentRequirement{Currency: reg.Payment.Currency}
}

func validateCreateCommand(cmd *CreateRegistrationCommand) error {
	cmd.EventRef = strings.TrimSpace(cmd.EventRef)
	if cmd.EventRef == "" {
		return newValidationError("eventId", "eventId is required")
	}
	if cmd.Kind != entities.RegistrationKindIndividual && cmd.Kind != entities.RegistrationKindTeam {
		return newValidationError("type", "type must be individual or team")
	}
	if cmd.Kind == entities.RegistrationKindIndividual {
		return nil
	}

	leader := strings.ToLower(strings.TrimSpace(cmd.Email))
	seen := make(map[string]struct{}, len(cmd.Members))
	for i, m := range cmd.Members {
		name := strings.TrimSpace(m.Name)
		email := strings.ToLower(strings.TrimSpace(m.Email))
		if name == "" {
			return newValidationError(fmt.Sprintf("team.members[%d].name", i), "member name is required")
		}
		if email == "" {
			return newValidationError(fmt.Sprintf("team.members[%d].email", i), "member email is required")
		}
		if email == leader {
			return newValidationError(fmt.Sprintf("team.members[%d].email", i), "leader must not be listed as a member")
		}
		if _, ok := seen[email]; ok {
			return newValidationError(fmt.Sprintf("team.members[%d].email", i), "duplicate member email")
		}
		seen[email] = struct{}{}
		cmd.Members[i] = entities.TeamMember{Name: name, Email: email}
	}
	return nil
}

// coveredEmails is the de-duplicated, case-normalized set the one-time fee
// must cover: the leader plus (for team kind) every member.
func coveredEmails(cmd CreateRegistrationCommand) []string {
	emails := []string{cmd.Email}
	if cmd.Kind == entities.RegistrationKindTeam {
		for _, m := range cmd.Members {
			emails = append(emails, m.Email)
		}
	}
	return normalizeEmails(emails)
}
