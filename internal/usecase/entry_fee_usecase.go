package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
)

// EntryFeeOrder is the outcome of a standalone entry-fee order request.
// When everyone in the requested set has already paid, NeedsPayment is false
// and no intent or gateway order exists.
type EntryFeeOrder struct {
	NeedsPayment   bool
	GatewayOrderID string
	AmountPaise    int64
	Currency       string
	CoveredEmails  []string
	Breakdown      *FeeBreakdown
}

// IEntryFeeUseCase exposes the entry-fee flows not tied to one registration:
// paid-status lookup and "pay the fee up front" orders.

type IEntryFeeUseCase interface {
	Status(ctx context.Context, callerEmail string, extraEmails []string) ([]EntryFeeStatus, error)
	CreateOrder(ctx context.Context, payerAccountID, payerEmail string, extraEmails []string) (EntryFeeOrder, error)
}

type EntryFeeUseCase struct {
	ledger  *EntryFeeLedger
	intents *PaymentIntentService
	pricing PricingConfig
}

var _ IEntryFeeUseCase = (*EntryFeeUseCase)(nil)

func NewEntryFeeUseCase(ledger *EntryFeeLedger, intents *PaymentIntentService, pricing PricingConfig) *EntryFeeUseCase {
	return &EntryFeeUseCase{ledger: ledger, intents: intents, pricing: pricing}
}

// Status reports the paid flag for the caller and any extra e-mails.
// The caller is always included in the check.
func (u *EntryFeeUseCase) Status(ctx context.Context, callerEmail string, extraEmails []string) ([]EntryFeeStatus, error) {
	emails := append([]string{callerEmail}, extraEmails...)
	return u.ledger.Status(ctx, emails)
}

// CreateOrder opens a gateway order covering every still-unpaid person among
// the caller plus extraEmails. The resulting intent is entry-fee-only: it has
// no registration attached, so reconciliation updates the ledger alone.
func (u *EntryFeeUseCase) CreateOrder(ctx context.Context, payerAccountID, payerEmail string, extraEmails []string) (EntryFeeOrder, error) {
	emails := append([]string{payerEmail}, extraEmails...)
	_, unpaid, err := u.ledger.Partition(ctx, emails)
	if err != nil {
		return EntryFeeOrder{}, err
	}

	if len(unpaid) == 0 {
		log.Printf("[entryfee][usecase] everyone already paid payer=%s checked=%d", payerAccountID, len(emails))
		return EntryFeeOrder{Currency: DefaultCurrency}, nil
	}

	breakdown := ComputePricing(u.pricing, len(unpaid))
	intent, err := u.intents.CreateIntent(ctx, CreateIntentParams{
		PayerAccountID: payerAccountID,
		Kind:           entities.IntentKindEntryFee,
		CoveredEmails:  unpaid,
		AmountPaise:    breakdown.Totals.TotalPaise,
		Currency:       DefaultCurrency,
		Receipt:        fmt.Sprintf("fee_%s_%d", payerAccountID, time.Now().UTC().Unix()),
		Notes: map[string]string{
			"leader": strings.ToLower(payerEmail),
			"emails": strings.Join(unpaid, ","),
			"count":  strconv.Itoa(len(unpaid)),
		},
	})
	if err != nil {
		return EntryFeeOrder{}, err
	}

	log.Printf("[entryfee][usecase] order created payer=%s order_id=%s unpaid=%d amount_paise=%d", payerAccountID, intent.GatewayOrderID, len(unpaid), intent.AmountPaise)
	return EntryFeeOrder{
		NeedsPayment:   true,
		GatewayOrderID: intent.GatewayOrderID,
		AmountPaise:    intent.AmountPaise,
		Currency:       intent.Currency,
		CoveredEmails:  unpaid,
		Breakdown:      &breakdown,
	}, nil
}
