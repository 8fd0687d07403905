package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"
)

// EntryFeeLedger answers "who has already paid the one-time entry fee" and
// flags people as paid-for-life. It is the only writer of the attendee flag,
// and writes are monotonic: an e-mail never goes back to unpaid.

type EntryFeeLedger struct {
	attendees interfaces.IAttendeeRepository
}

func NewEntryFeeLedger(attendees interfaces.IAttendeeRepository) *EntryFeeLedger {
	return &EntryFeeLedger{attendees: attendees}
}

// EntryFeeStatus is one e-mail's paid flag.
type EntryFeeStatus struct {
	Email   string
	HasPaid bool
	PaidAt  *time.Time
}

// Status reports the paid flag for every given e-mail, in input order.
// Unknown e-mails are reported as unpaid.
func (l *EntryFeeLedger) Status(ctx context.Context, emails []string) ([]EntryFeeStatus, error) {
	emails = normalizeEmails(emails)
	found, err := l.attendees.FindByEmails(ctx, emails)
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string]EntryFeeStatus, len(found))
	for _, a := range found {
		byEmail[strings.ToLower(a.Email)] = EntryFeeStatus{Email: strings.ToLower(a.Email), HasPaid: a.HasPaidEntryFee, PaidAt: a.EntryFeePaidAt}
	}

	out := make([]EntryFeeStatus, 0, len(emails))
	for _, e := range emails {
		if st, ok := byEmail[e]; ok {
			out = append(out, st)
			continue
		}
		out = append(out, EntryFeeStatus{Email: e})
	}
	return out, nil
}

// Partition splits the given e-mails into already-paid and still-unpaid sets.
func (l *EntryFeeLedger) Partition(ctx context.Context, emails []string) (paid, unpaid []string, err error) {
	statuses, err := l.Status(ctx, emails)
	if err != nil {
		return nil, nil, err
	}
	for _, st := range statuses {
		if st.HasPaid {
			paid = append(paid, st.Email)
		} else {
			unpaid = append(unpaid, st.Email)
		}
	}
	return paid, unpaid, nil
}

// MarkPaid flags every e-mail as paid-for-life. Idempotent per e-mail;
// storage errors propagate so the caller's retry path can recover.
func (l *EntryFeeLedger) MarkPaid(ctx context.Context, emails []string, at time.Time) error {
	emails = normalizeEmails(emails)
	if len(emails) == 0 {
		return nil
	}
	return l.attendees.MarkPaid(ctx, emails, at)
}

// normalizeEmails lowercases, trims and de-duplicates, preserving order.
func normalizeEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
