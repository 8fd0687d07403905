package entities

import "time"

// Attendee is the per-person entry-fee ledger record, keyed by e-mail.
//
// Domain notes:
//   - The entry fee is charged at most once per person, across all events.
//   - HasPaidEntryFee is monotonic: once true it is never reset by any
//     normal flow. Only payment reconciliation flips it.
//
// Storage model (DynamoDB):
//   - PK: email (lowercased)

type Attendee struct {
	Email           string     `json:"email"`
	HasPaidEntryFee bool       `json:"has_paid_entry_fee"`
	EntryFeePaidAt  *time.Time `json:"entry_fee_paid_at,omitempty"`
}
