package response

import (
	"testing"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase"
)

func TestFromRegistration(t *testing.T) {
	now := time.Now().UTC()
	verified := now.Add(time.Minute)
	reg := entities.Registration{
		ID:             "reg-1",
		EventRef:       "evt-1",
		EventName:      "Robowars",
		OwnerAccountID: "acc-1",
		OwnerEmail:     "leader@x.com",
		Kind:           entities.RegistrationKindTeam,
		TeamName:       "The Bots",
		TeamMembers:    []entities.TeamMember{{Name: "Mem", Email: "m1@x.com"}},
		Status:         entities.RegistrationStatusConfirmed,
		Payment: entities.PaymentSummary{
			Method:           "gateway",
			Currency:         "INR",
			AmountPaise:      51180,
			Status:           entities.PaymentStatePaid,
			GatewayOrderID:   "order_1",
			GatewayPaymentID: "pay_1",
			VerifiedAt:       &verified,
		},
		History:   []entities.HistoryEntry{{Kind: "order_created", At: now}},
		CreatedAt: now,
	}

	res := FromRegistration(reg)
	if res.ID != "reg-1" || res.EventID != "evt-1" || res.Type != "team" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Payment.Amount != 511.80 {
		t.Fatalf("amount must be converted to display currency: %v", res.Payment.Amount)
	}
	if res.Payment.Status != "paid" || res.Payment.GatewayPaymentID != "pay_1" {
		t.Fatalf("unexpected payment block: %+v", res.Payment)
	}
	if len(res.TeamMembers) != 1 || res.TeamMembers[0].Email != "m1@x.com" {
		t.Fatalf("unexpected members: %+v", res.TeamMembers)
	}
	if len(res.History) != 1 || res.History[0].Kind != "order_created" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
}

func TestFromRegistrationOutcome(t *testing.T) {
	t.Run("with payment requirement", func(t *testing.T) {
		breakdown := usecase.ComputePricing(usecase.PricingConfig{BaseFeeINR: 250, PassGatewayFees: true, GatewayFeeRate: 0.02, TaxRate: 0.18}, 2)
		out := usecase.RegistrationOutcome{
			Registration: entities.Registration{ID: "reg-1"},
			Payment: usecase.PaymentRequirement{
				NeedsPayment:   true,
				AmountPaise:    breakdown.Totals.TotalPaise,
				Currency:       "INR",
				GatewayOrderID: "order_1",
				Breakdown:      &breakdown,
			},
		}

		res := FromRegistrationOutcome(out, "rzp_key")
		if !res.Success || !res.Payment.NeedsPayment {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.Payment.KeyID != "rzp_key" || res.Payment.GatewayOrderID != "order_1" {
			t.Fatalf("unexpected payment block: %+v", res.Payment)
		}
		if res.Payment.Breakdown == nil || res.Payment.Breakdown.People != 2 {
			t.Fatalf("breakdown lost: %+v", res.Payment.Breakdown)
		}
	})

	t.Run("free outcome omits key", func(t *testing.T) {
		out := usecase.RegistrationOutcome{
			Registration: entities.Registration{ID: "reg-1", Status: entities.RegistrationStatusConfirmed},
			Payment:      usecase.PaymentRequirement{Currency: "INR"},
		}

		res := FromRegistrationOutcome(out, "rzp_key")
		if res.Payment.NeedsPayment || res.Payment.KeyID != "" || res.Payment.Amount != 0 {
			t.Fatalf("free outcome must not expose a charge: %+v", res.Payment)
		}
	})
}

func TestFromRegistrations(t *testing.T) {
	res := FromRegistrations([]entities.Registration{{ID: "reg-2"}, {ID: "reg-1"}})
	if !res.Success || len(res.Items) != 2 || res.Items[0].ID != "reg-2" {
		t.Fatalf("unexpected list: %+v", res)
	}

	empty := FromRegistrations(nil)
	if empty.Items == nil || len(empty.Items) != 0 {
		t.Fatalf("empty list must marshal as [], got %+v", empty.Items)
	}
}
