package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"
)

// ErrGatewayUnavailable signals that the gateway order could not be created.
// Retryable: nothing was persisted, so the caller may safely re-invoke.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// PaymentIntentService opens gateway orders and records the matching intent.
//
// Ordering is deliberate: the gateway order is created first and the intent
// is persisted second. A gateway failure therefore leaves no orphaned intent,
// and a persistence failure leaves at worst an unreferenced gateway order
// that nothing in this system will ever reconcile.

type PaymentIntentService struct {
	intents interfaces.IPaymentIntentRepository
	gateway interfaces.IPaymentGateway
}

func NewPaymentIntentService(intents interfaces.IPaymentIntentRepository, gateway interfaces.IPaymentGateway) *PaymentIntentService {
	return &PaymentIntentService{intents: intents, gateway: gateway}
}

// CreateIntentParams describes one charge to open on the gateway.
type CreateIntentParams struct {
	PayerAccountID  string
	RegistrationRef string
	Kind            entities.IntentKind
	CoveredEmails   []string
	AmountPaise     int64
	Currency        string
	Receipt         string
	Notes           map[string]string
}

// CreateIntent opens a gateway order for the amount and persists the intent
// covering the given e-mails.
func (s *PaymentIntentService) CreateIntent(ctx context.Context, p CreateIntentParams) (entities.PaymentIntent, error) {
	if s.gateway == nil {
		log.Printf("[intent][usecase] gateway not configured payer=%s", p.PayerAccountID)
		return entities.PaymentIntent{}, errors.New("payment gateway not configured")
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Receipt == "" {
		p.Receipt = fmt.Sprintf("fee_%s_%d", uuid.NewString()[:8], time.Now().UTC().Unix())
	}

	log.Printf("[intent][usecase] creating gateway order payer=%s amount_paise=%d covered=%d", p.PayerAccountID, p.AmountPaise, len(p.CoveredEmails))
	orderID, err := s.gateway.CreateOrder(ctx, p.AmountPaise, p.Currency, p.Receipt, p.Notes)
	if err != nil {
		log.Printf("[intent][usecase] gateway order failed payer=%s err=%v", p.PayerAccountID, err)
		return entities.PaymentIntent{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	now := time.Now().UTC()
	intent := entities.PaymentIntent{
		ID:              uuid.NewString(),
		PayerAccountID:  p.PayerAccountID,
		RegistrationRef: p.RegistrationRef,
		Kind:            p.Kind,
		CoveredEmails:   p.CoveredEmails,
		AmountPaise:     p.AmountPaise,
		Currency:        p.Currency,
		GatewayOrderID:  orderID,
		Status:          entities.IntentStatusCreated,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.intents.Create(ctx, intent)
	if err != nil {
		log.Printf("[intent][usecase] intent persist failed payer=%s order_id=%s err=%v", p.PayerAccountID, orderID, err)
		return entities.PaymentIntent{}, err
	}
	log.Printf("[intent][usecase] intent created id=%s order_id=%s amount_paise=%d", created.ID, created.GatewayOrderID, created.AmountPaise)
	return created, nil
}
