package interfaces

import (
	"context"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
)

// IAttendeeRepository abstracts DynamoDB persistence for the entry-fee ledger.
//
// MarkPaid must be idempotent per e-mail: flagging an already-paid attendee is
// a no-op that keeps the original paid-at timestamp.

type IAttendeeRepository interface {
	FindByEmails(ctx context.Context, emails []string) ([]entities.Attendee, error)
	MarkPaid(ctx context.Context, emails []string, at time.Time) error
}
