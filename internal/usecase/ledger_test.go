package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	mock_interfaces "github.com/grupo95-symposium/registration-service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEntryFeeLedger_Status(t *testing.T) {
	t.Run("reports in input order with unknowns unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attendees := mock_interfaces.NewMockIAttendeeRepository(ctrl)
		ledger := NewEntryFeeLedger(attendees)

		paidAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		attendees.EXPECT().FindByEmails(gomock.Any(), []string{"a@x.com", "b@x.com"}).Return([]entities.Attendee{
			{Email: "b@x.com", HasPaidEntryFee: true, EntryFeePaidAt: &paidAt},
		}, nil)

		statuses, err := ledger.Status(context.Background(), []string{"a@x.com", "b@x.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(statuses) != 2 {
			t.Fatalf("expected 2 statuses, got %d", len(statuses))
		}
		if statuses[0].Email != "a@x.com" || statuses[0].HasPaid {
			t.Fatalf("unknown email should be unpaid: %+v", statuses[0])
		}
		if statuses[1].Email != "b@x.com" || !statuses[1].HasPaid || statuses[1].PaidAt == nil {
			t.Fatalf("expected paid status: %+v", statuses[1])
		}
	})

	t.Run("normalizes before querying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attendees := mock_interfaces.NewMockIAttendeeRepository(ctrl)
		ledger := NewEntryFeeLedger(attendees)

		attendees.EXPECT().FindByEmails(gomock.Any(), []string{"a@x.com"}).Return(nil, nil)

		statuses, err := ledger.Status(context.Background(), []string{" A@X.com ", "a@x.com", ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(statuses) != 1 || statuses[0].Email != "a@x.com" {
			t.Fatalf("expected one normalized status, got %+v", statuses)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attendees := mock_interfaces.NewMockIAttendeeRepository(ctrl)
		ledger := NewEntryFeeLedger(attendees)

		attendees.EXPECT().FindByEmails(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := ledger.Status(context.Background(), []string{"a@x.com"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEntryFeeLedger_Partition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	attendees := mock_interfaces.NewMockIAttendeeRepository(ctrl)
	ledger := NewEntryFeeLedger(attendees)

	attendees.EXPECT().FindByEmails(gomock.Any(), []string{"a@x.com", "b@x.com", "c@x.com"}).Return([]entities.Attendee{
		{Email: "a@x.com", HasPaidEntryFee: true},
		{Email: "c@x.com", HasPaidEntryFee: false},
	}, nil)

	paid, unpaid, err := ledger.Partition(context.Background(), []string{"a@x.com", "b@x.com", "c@x.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(paid, []string{"a@x.com"}) {
		t.Fatalf("unexpected paid set: %v", paid)
	}
	if !reflect.DeepEqual(unpaid, []string{"b@x.com", "c@x.com"}) {
		t.Fatalf("unexpected unpaid set: %v", unpaid)
	}
}

func TestEntryFeeLedger_MarkPaid(t *testing.T) {
	t.Run("normalizes and forwards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attendees := mock_interfaces.NewMockIAttendeeRepository(ctrl)
		ledger := NewEntryFeeLedger(attendees)

		at := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		attendees.EXPECT().MarkPaid(gomock.Any(), []string{"a@x.com"}, at).Return(nil)

		if err := ledger.MarkPaid(context.Background(), []string{" A@X.COM "}, at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty set is a no-op", func(t *testing.T) {
		ledger := NewEntryFeeLedger(nil)
		if err := ledger.MarkPaid(context.Background(), []string{"", "  "}, time.Now()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNormalizeEmails(t *testing.T) {
	got := normalizeEmails([]string{" B@x.com", "a@x.com", "b@X.COM", "", "a@x.com"})
	want := []string{"b@x.com", "a@x.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
