package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"
	mock_interfaces "github.com/grupo95-symposium/registration-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testPricing = PricingConfig{BaseFeeINR: 250, PassGatewayFees: true, GatewayFeeRate: 0.02, TaxRate: 0.18}

func newRegistrationFixture(t *testing.T) (*RegistrationUseCase, *mock_interfaces.MockIRegistrationRepository, *mock_interfaces.MockIAttendeeRepository, *mock_interfaces.MockIPaymentIntentRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	regs := mock_interfaces.NewMockIRegistrationRepository(ctrl)
	attendees := mock_interfaces.NewMockIAttendeeRepository(ctrl)
	intents := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	uc := NewRegistrationUseCase(regs, NewEntryFeeLedger(attendees), NewPaymentIntentService(intents, gateway), testPricing)
	return uc, regs, attendees, intents, gateway
}

func individualCmd() CreateRegistrationCommand {
	return CreateRegistrationCommand{
		AccountID: "acc-1",
		Email:     "leader@x.com",
		EventRef:  "evt-1",
		EventName: "Robowars",
		Kind:      entities.RegistrationKindIndividual,
	}
}

func teamCmd() CreateRegistrationCommand {
	return CreateRegistrationCommand{
		AccountID: "acc-1",
		Email:     "leader@x.com",
		EventRef:  "evt-1",
		Kind:      entities.RegistrationKindTeam,
		TeamName:  "The Bots",
		Members: []entities.TeamMember{
			{Name: "Mem One", Email: "m1@x.com"},
			{Name: "Mem Two", Email: "m2@x.com"},
		},
	}
}

func TestRegistrationUseCase_Create_Validation(t *testing.T) {
	uc, _, _, _, _ := newRegistrationFixture(t)

	cases := []struct {
		name  string
		mut   func(*CreateRegistrationCommand)
		field string
	}{
		{name: "missing event", mut: func(c *CreateRegistrationCommand) { c.EventRef = " " }, field: "eventId"},
		{name: "bad kind", mut: func(c *CreateRegistrationCommand) { c.Kind = "corporate" }, field: "type"},
		{name: "member without name", mut: func(c *CreateRegistrationCommand) {
			c.Kind = entities.RegistrationKindTeam
			c.Members = []entities.TeamMember{{Email: "m1@x.com"}}
		}, field: "team.members[0].name"},
		{name: "member without email", mut: func(c *CreateRegistrationCommand) {
			c.Kind = entities.RegistrationKindTeam
			c.Members = []entities.TeamMember{{Name: "Mem"}}
		}, field: "team.members[0].email"},
		{name: "leader listed as member", mut: func(c *CreateRegistrationCommand) {
			c.Kind = entities.RegistrationKindTeam
			c.Members = []entities.TeamMember{{Name: "Mem", Email: "LEADER@x.com"}}
		}, field: "team.members[0].email"},
		{name: "duplicate member email", mut: func(c *CreateRegistrationCommand) {
			c.Kind = entities.RegistrationKindTeam
			c.Members = []entities.TeamMember{
				{Name: "A", Email: "m1@x.com"},
				{Name: "B", Email: "M1@x.com"},
			}
		}, field: "team.members[1].email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := individualCmd()
			tc.mut(&cmd)

			_, err := uc.Create(context.Background(), cmd)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestRegistrationUseCase_Create_Idempotency(t *testing.T) {
	t.Run("existing active registration wins, no new intent", func(t *testing.T) {
		uc, regs, _, _, _ := newRegistrationFixture(t)

		existing := entities.Registration{
			ID:             "reg-1",
			EventRef:       "evt-1",
			OwnerAccountID: "acc-1",
			Status:         entities.RegistrationStatusPending,
			Payment: entities.PaymentSummary{
				Status:         entities.PaymentStatePending,
				AmountPaise:    25590,
				Currency:       "INR",
				GatewayOrderID: "order_1",
			},
		}
		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(existing, nil)

		out, err := uc.Create(context.Background(), individualCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Existing {
			t.Fatalf("expected Existing=true")
		}
		if !out.Payment.NeedsPayment || out.Payment.GatewayOrderID != "order_1" || out.Payment.AmountPaise != 25590 {
			t.Fatalf("expected pending payment requirement recomputed: %+v", out.Payment)
		}
	})

	t.Run("existing confirmed registration needs no payment", func(t *testing.T) {
		uc, regs, _, _, _ := newRegistrationFixture(t)

		existing := entities.Registration{
			ID:             "reg-1",
			OwnerAccountID: "acc-1",
			Status:         entities.RegistrationStatusConfirmed,
			Payment:        entities.PaymentSummary{Status: entities.PaymentStatePaid, Currency: "INR"},
		}
		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(existing, nil)

		out, err := uc.Create(context.Background(), individualCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Payment.NeedsPayment {
			t.Fatalf("confirmed registration must not require payment: %+v", out.Payment)
		}
	})
}

func TestRegistrationUseCase_Create_FreePath(t *testing.T) {
	uc, regs, attendees, _, _ := newRegistrationFixture(t)

	regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(entities.Registration{}, nil)
	attendees.EXPECT().FindByEmails(gomock.Any(), []string{"leader@x.com"}).Return([]entities.Attendee{
		{Email: "leader@x.com", HasPaidEntryFee: true},
	}, nil)
	regs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reg entities.Registration) (entities.Registration, error) {
			if reg.Status != entities.RegistrationStatusConfirmed {
				t.Fatalf("expected immediate confirm, got %q", reg.Status)
			}
			if reg.Payment.Status != entities.PaymentStatePaid || reg.Payment.AmountPaise != 0 {
				t.Fatalf("expected zero-amount paid summary: %+v", reg.Payment)
			}
			if len(reg.History) != 1 || reg.History[0].Kind != "order_created" {
				t.Fatalf("expected order_created history: %+v", reg.History)
			}
			if reg.History[0].Data["reason"] != "all_paid" {
				t.Fatalf("expected all_paid reason: %+v", reg.History[0].Data)
			}
			return reg, nil
		},
	)

	out, err := uc.Create(context.Background(), individualCmd())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Payment.NeedsPayment {
		t.Fatalf("free path must not require payment")
	}
	if out.Existing {
		t.Fatalf("fresh create must not report Existing")
	}
}

func TestRegistrationUseCase_Create_PaidPath(t *testing.T) {
	t.Run("charges only the unpaid heads", func(t *testing.T) {
		uc, regs, attendees, intents, gateway := newRegistrationFixture(t)

		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(entities.Registration{}, nil)
		attendees.EXPECT().FindByEmails(gomock.Any(), []string{"leader@x.com", "m1@x.com", "m2@x.com"}).Return([]entities.Attendee{
			{Email: "leader@x.com", HasPaidEntryFee: true},
		}, nil)

		wantAmount := ComputePricing(testPricing, 2).Totals.TotalPaise
		gateway.EXPECT().CreateOrder(gomock.Any(), wantAmount, "INR", gomock.Any(), gomock.Any()).Return("order_1", nil)
		intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.PaymentIntent) (entities.PaymentIntent, error) {
				if in.RegistrationRef == "" {
					t.Fatalf("intent must reference the registration up front")
				}
				if len(in.CoveredEmails) != 2 || in.CoveredEmails[0] != "m1@x.com" {
					t.Fatalf("intent must cover only unpaid heads: %v", in.CoveredEmails)
				}
				return in, nil
			},
		)
		regs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reg entities.Registration) (entities.Registration, error) {
				if reg.Status != entities.RegistrationStatusPending {
					t.Fatalf("expected pending status, got %q", reg.Status)
				}
				if reg.Payment.Status != entities.PaymentStatePending || reg.Payment.GatewayOrderID != "order_1" {
					t.Fatalf("unexpected payment summary: %+v", reg.Payment)
				}
				if reg.Payment.AmountPaise != wantAmount {
					t.Fatalf("expected amount %d, got %d", wantAmount, reg.Payment.AmountPaise)
				}
				if reg.TeamName != "The Bots" || len(reg.TeamMembers) != 2 {
					t.Fatalf("team fields lost: %+v", reg)
				}
				return reg, nil
			},
		)

		out, err := uc.Create(context.Background(), teamCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Payment.NeedsPayment || out.Payment.GatewayOrderID != "order_1" {
			t.Fatalf("expected payment requirement: %+v", out.Payment)
		}
		if out.Payment.Breakdown == nil || out.Payment.Breakdown.Count != 2 {
			t.Fatalf("expected breakdown for 2 heads: %+v", out.Payment.Breakdown)
		}
	})

	t.Run("gateway failure leaves no registration", func(t *testing.T) {
		uc, regs, attendees, _, gateway := newRegistrationFixture(t)

		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(entities.Registration{}, nil)
		attendees.EXPECT().FindByEmails(gomock.Any(), gomock.Any()).Return(nil, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("down"))

		_, err := uc.Create(context.Background(), individualCmd())
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("duplicate race recovers the winner", func(t *testing.T) {
		uc, regs, attendees, intents, gateway := newRegistrationFixture(t)

		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(entities.Registration{}, nil)
		attendees.EXPECT().FindByEmails(gomock.Any(), gomock.Any()).Return(nil, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("order_loser", nil)
		intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.PaymentIntent) (entities.PaymentIntent, error) { return in, nil },
		)
		regs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Registration{}, interfaces.ErrActiveRegistrationExists)

		winner := entities.Registration{
			ID:             "reg-winner",
			OwnerAccountID: "acc-1",
			Status:         entities.RegistrationStatusPending,
			Payment: entities.PaymentSummary{
				Status:         entities.PaymentStatePending,
				GatewayOrderID: "order_winner",
				AmountPaise:    25590,
				Currency:       "INR",
			},
		}
		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(winner, nil)

		out, err := uc.Create(context.Background(), individualCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Existing || out.Registration.ID != "reg-winner" {
			t.Fatalf("expected winner returned: %+v", out)
		}
		if out.Payment.GatewayOrderID != "order_winner" {
			t.Fatalf("payment requirement must come from the winner: %+v", out.Payment)
		}
	})

	t.Run("conflict without a readable winner surfaces the conflict", func(t *testing.T) {
		uc, regs, attendees, intents, gateway := newRegistrationFixture(t)

		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(entities.Registration{}, nil)
		attendees.EXPECT().FindByEmails(gomock.Any(), gomock.Any()).Return(nil, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("order_1", nil)
		intents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.PaymentIntent) (entities.PaymentIntent, error) { return in, nil },
		)
		regs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Registration{}, interfaces.ErrActiveRegistrationExists)
		regs.EXPECT().FindActive(gomock.Any(), "evt-1", "acc-1").Return(entities.Registration{}, nil)

		_, err := uc.Create(context.Background(), individualCmd())
		if !errors.Is(err, interfaces.ErrActiveRegistrationExists) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})
}

func TestRegistrationUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _, _, _, _ := newRegistrationFixture(t)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrRegistrationNotFound) {
			t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		uc, regs, _, _, _ := newRegistrationFixture(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.Registration{}, nil)

		_, err := uc.GetByID(context.Background(), "reg-1")
		if !errors.Is(err, ErrRegistrationNotFound) {
			t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, regs, _, _, _ := newRegistrationFixture(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.Registration{ID: "reg-1"}, nil)

		reg, err := uc.GetByID(context.Background(), " reg-1 ")
		if err != nil || reg.ID != "reg-1" {
			t.Fatalf("unexpected result err=%v reg=%+v", err, reg)
		}
	})
}

func TestRegistrationUseCase_CheckoutAck(t *testing.T) {
	t.Run("appends history without touching payment state", func(t *testing.T) {
		uc, regs, _, _, _ := newRegistrationFixture(t)

		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.Registration{
			ID:             "reg-1",
			OwnerAccountID: "acc-1",
			Status:         entities.RegistrationStatusPending,
			Payment:        entities.PaymentSummary{Status: entities.PaymentStatePending},
		}, nil)
		regs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reg entities.Registration) (entities.Registration, error) {
				if reg.Status != entities.RegistrationStatusPending || reg.Payment.Status != entities.PaymentStatePending {
					t.Fatalf("checkout ack must not change state: %+v", reg)
				}
				last := reg.History[len(reg.History)-1]
				if last.Kind != "checkout_ack" || last.Data["payment_id"] != "pay_1" {
					t.Fatalf("expected checkout_ack entry: %+v", last)
				}
				return reg, nil
			},
		)

		_, err := uc.CheckoutAck(context.Background(), "reg-1", "acc-1", map[string]interface{}{"payment_id": "pay_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects non-owner", func(t *testing.T) {
		uc, regs, _, _, _ := newRegistrationFixture(t)
		regs.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.Registration{ID: "reg-1", OwnerAccountID: "acc-1"}, nil)

		_, err := uc.CheckoutAck(context.Background(), "reg-1", "acc-2", nil)
		if !errors.Is(err, ErrNotRegistrationOwner) {
			t.Fatalf("expected ErrNotRegistrationOwner, got %v", err)
		}
	})
}
