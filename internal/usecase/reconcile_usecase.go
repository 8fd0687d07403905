package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidPaymentSignature = errors.New("invalid payment signature")
	ErrPaymentOrderNotFound    = errors.New("payment order not found")
)

const (
	webhookEventPaymentCaptured = "payment.captured"

	sourceWebhook = "webhook"
	sourceVerify  = "verify-endpoint"
)

// ReconcileSecrets holds the two HMAC secrets the gateway contract defines:
// the webhook secret (signs the raw callback body) and the key secret (signs
// the client-side "orderID|paymentID" string).
type ReconcileSecrets struct {
	WebhookSecret string
	KeySecret     string
}

// ReconcileResult is what a successful reconciliation converged to.
type ReconcileResult struct {
	Intent        entities.PaymentIntent
	Registration  *entities.Registration
	CoveredEmails []string
	AlreadyPaid   bool
}

// IReconcileUseCase is the gateway reconciliation engine. Its two entry
// points (async webhook, synchronous client verify) funnel into one shared
// routine so they always converge to the same end state.

type IReconcileUseCase interface {
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) error
	VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (ReconcileResult, error)
}

type ReconcileUseCase struct {
	intents interfaces.IPaymentIntentRepository
	regs    interfaces.IRegistrationRepository
	ledger  *EntryFeeLedger
	secrets ReconcileSecrets
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(intents interfaces.IPaymentIntentRepository, regs interfaces.IRegistrationRepository, ledger *EntryFeeLedger, secrets ReconcileSecrets) *ReconcileUseCase {
	return &ReconcileUseCase{intents: intents, regs: regs, ledger: ledger, secrets: secrets}
}

// webhookEnvelope mirrors the gateway's callback shape. Only the fields the
// reconciliation needs are decoded; the raw body is persisted verbatim.
type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				OrderID string `json:"order_id"`
				ID      string `json:"id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook processes one asynchronous gateway delivery.
//
// The signature is recomputed over the exact raw body; a mismatch rejects the
// delivery with no state change. After the signature passes, conditions that
// merely mean "nothing for us to do" (foreign event type, no order id, order
// unknown to this system, already-paid replay) are acknowledged silently so
// the gateway does not retry-storm. Storage failures propagate so the
// gateway's retry mechanism can recover them.
func (u *ReconcileUseCase) HandleWebhook(ctx context.Context, rawBody []byte, signature string) error {
	if !verifyWebhookSignature(rawBody, signature, u.secrets.WebhookSecret) {
		log.Printf("[reconcile][usecase] webhook signature mismatch body_len=%d", len(rawBody))
		return ErrInvalidWebhookSignature
	}

	var env webhookEnvelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		log.Printf("[reconcile][usecase] webhook body unmarshal failed err=%v", err)
		return nil
	}
	if env.Event != webhookEventPaymentCaptured {
		log.Printf("[reconcile][usecase] webhook event ignored event=%s", env.Event)
		return nil
	}

	orderID := env.Payload.Payment.Entity.OrderID
	if orderID == "" {
		log.Printf("[reconcile][usecase] webhook event carries no order id event=%s", env.Event)
		return nil
	}

	intent, err := u.intents.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[reconcile][usecase] intent lookup failed order_id=%s err=%v", orderID, err)
		return err
	}
	if intent.ID == "" {
		// The order may belong to a different system or be stale.
		log.Printf("[reconcile][usecase] no intent for webhook order order_id=%s", orderID)
		return nil
	}

	_, err = u.reconcile(ctx, intent, env.Payload.Payment.Entity.ID, rawBody, sourceWebhook)
	return err
}

// VerifyPayment processes a synchronous client-submitted verification.
//
// Same convergence as the webhook path, but the signature covers
// "orderID|paymentID" under the key secret, and an unknown order is an error
// for the caller rather than a silent acknowledge.
func (u *ReconcileUseCase) VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) (ReconcileResult, error) {
	if !verifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature, u.secrets.KeySecret) {
		log.Printf("[reconcile][usecase] verify signature mismatch order_id=%s", gatewayOrderID)
		return ReconcileResult{}, ErrInvalidPaymentSignature
	}

	intent, err := u.intents.GetByOrderID(ctx, gatewayOrderID)
	if err != nil {
		log.Printf("[reconcile][usecase] intent lookup failed order_id=%s err=%v", gatewayOrderID, err)
		return ReconcileResult{}, err
	}
	if intent.ID == "" {
		log.Printf("[reconcile][usecase] verify for unknown order order_id=%s", gatewayOrderID)
		return ReconcileResult{}, ErrPaymentOrderNotFound
	}

	raw, _ := json.Marshal(map[string]string{
		"source":     sourceVerify,
		"order_id":   gatewayOrderID,
		"payment_id": gatewayPaymentID,
	})
	return u.reconcile(ctx, intent, gatewayPaymentID, raw, sourceVerify)
}

// reconcile applies a captured payment exactly once: mark the intent paid,
// confirm the attached registration (if any), flag every covered e-mail on
// the ledger. The conditional created->paid transition is the only guard;
// each side effect is itself idempotent, so losing a race to the other entry
// point is safe.
func (u *ReconcileUseCase) reconcile(ctx context.Context, intent entities.PaymentIntent, gatewayPaymentID string, raw json.RawMessage, source string) (ReconcileResult, error) {
	marked, applied, err := u.intents.MarkPaid(ctx, intent.ID, gatewayPaymentID, raw)
	if err != nil {
		log.Printf("[reconcile][usecase] mark-paid failed intent=%s order_id=%s err=%v", intent.ID, intent.GatewayOrderID, err)
		return ReconcileResult{}, err
	}
	if !applied {
		log.Printf("[reconcile][usecase] replay ignored intent=%s order_id=%s source=%s", marked.ID, marked.GatewayOrderID, source)
		return ReconcileResult{Intent: marked, CoveredEmails: marked.CoveredEmails, AlreadyPaid: true}, nil
	}

	result := ReconcileResult{Intent: marked, CoveredEmails: marked.CoveredEmails}
	now := time.Now().UTC()

	if marked.RegistrationRef != "" {
		reg, err := u.regs.GetByID(ctx, marked.RegistrationRef)
		if err != nil {
			log.Printf("[reconcile][usecase] registration load failed reg=%s err=%v", marked.RegistrationRef, err)
			return ReconcileResult{}, err
		}
		if reg.ID != "" {
			reg.Status = entities.RegistrationStatusConfirmed
			reg.Payment.Status = entities.PaymentStatePaid
			reg.Payment.GatewayPaymentID = gatewayPaymentID
			reg.Payment.VerifiedAt = &now
			reg.UpdatedAt = now
			reg.AppendHistory(historyKindForSource(source), now, map[string]interface{}{
				"order_id":   marked.GatewayOrderID,
				"payment_id": gatewayPaymentID,
			})

			updated, err := u.regs.Update(ctx, reg)
			if err != nil {
				log.Printf("[reconcile][usecase] registration confirm failed reg=%s err=%v", reg.ID, err)
				return ReconcileResult{}, err
			}
			result.Registration = &updated
			log.Printf("[reconcile][usecase] registration confirmed reg=%s order_id=%s", updated.ID, marked.GatewayOrderID)
		}
	}

	if err := u.ledger.MarkPaid(ctx, marked.CoveredEmails, now); err != nil {
		log.Printf("[reconcile][usecase] ledger mark-paid failed order_id=%s err=%v", marked.GatewayOrderID, err)
		return ReconcileResult{}, err
	}

	log.Printf("[reconcile][usecase] reconciled order_id=%s source=%s covered=%d", marked.GatewayOrderID, source, len(marked.CoveredEmails))
	return result, nil
}

func historyKindForSource(source string) string {
	if source == sourceWebhook {
		return "webhook_paid"
	}
	return "verify_paid"
}
