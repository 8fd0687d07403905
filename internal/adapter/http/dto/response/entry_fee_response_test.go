package response

import (
	"testing"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase"
)

func TestFromEntryFeeStatuses(t *testing.T) {
	paidAt := time.Now().UTC()
	res := FromEntryFeeStatuses([]usecase.EntryFeeStatus{
		{Email: "a@x.com", HasPaid: true, PaidAt: &paidAt},
		{Email: "b@x.com"},
	})
	if !res.Success || len(res.Entries) != 2 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if !res.Entries[0].HasPaid || res.Entries[0].PaidAt == nil {
		t.Fatalf("paid entry lost its flag: %+v", res.Entries[0])
	}
	if res.Entries[1].HasPaid || res.Entries[1].PaidAt != nil {
		t.Fatalf("unpaid entry must stay bare: %+v", res.Entries[1])
	}
}

func TestFromFeeBreakdown(t *testing.T) {
	b := usecase.ComputePricing(usecase.PricingConfig{BaseFeeINR: 250, PassGatewayFees: true, GatewayFeeRate: 0.02, TaxRate: 0.18}, 2)
	res := FromFeeBreakdown(b)
	if res.People != 2 {
		t.Fatalf("expected 2 people, got %d", res.People)
	}
	if res.PerHead.Base != 250 || res.PerHead.GatewayFee != 5 || res.PerHead.Tax != 0.90 {
		t.Fatalf("unexpected per-head amounts: %+v", res.PerHead)
	}
	if res.Totals.Total != 511.80 {
		t.Fatalf("unexpected total: %v", res.Totals.Total)
	}
}

func TestFromEntryFeeOrder(t *testing.T) {
	t.Run("everyone paid", func(t *testing.T) {
		res := FromEntryFeeOrder(usecase.EntryFeeOrder{Currency: "INR"}, "rzp_key")
		if res.Payment.NeedsPayment || res.Payment.KeyID != "" {
			t.Fatalf("no-order response must not carry a charge: %+v", res.Payment)
		}
		if res.Message != "Everyone already paid" {
			t.Fatalf("unexpected message: %q", res.Message)
		}
	})

	t.Run("with order", func(t *testing.T) {
		b := usecase.ComputePricing(usecase.PricingConfig{BaseFeeINR: 250, PassGatewayFees: true, GatewayFeeRate: 0.02, TaxRate: 0.18}, 1)
		res := FromEntryFeeOrder(usecase.EntryFeeOrder{
			NeedsPayment:   true,
			GatewayOrderID: "order_1",
			AmountPaise:    b.Totals.TotalPaise,
			Currency:       "INR",
			CoveredEmails:  []string{"a@x.com"},
			Breakdown:      &b,
		}, "rzp_key")
		if !res.Payment.NeedsPayment || res.Payment.GatewayOrderID != "order_1" || res.Payment.KeyID != "rzp_key" {
			t.Fatalf("unexpected payment block: %+v", res.Payment)
		}
		if res.Payment.Amount != 255.90 {
			t.Fatalf("unexpected display amount: %v", res.Payment.Amount)
		}
		if res.Breakdown == nil || res.Breakdown.People != 1 {
			t.Fatalf("breakdown lost: %+v", res.Breakdown)
		}
	})
}

func TestFromReconcileResult(t *testing.T) {
	t.Run("fresh reconciliation", func(t *testing.T) {
		reg := entities.Registration{ID: "reg-1", Status: entities.RegistrationStatusConfirmed}
		res := FromReconcileResult(usecase.ReconcileResult{
			Registration:  &reg,
			CoveredEmails: []string{"a@x.com"},
		})
		if !res.Success || res.Message != "" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.Registration == nil || res.Registration.ID != "reg-1" {
			t.Fatalf("registration lost: %+v", res.Registration)
		}
	})

	t.Run("replay", func(t *testing.T) {
		res := FromReconcileResult(usecase.ReconcileResult{AlreadyPaid: true, CoveredEmails: []string{"a@x.com"}})
		if res.Message != "Already verified" || res.Registration != nil {
			t.Fatalf("unexpected replay response: %+v", res)
		}
	})
}
