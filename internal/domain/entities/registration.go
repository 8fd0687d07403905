package entities

import "time"

// RegistrationStatus is the lifecycle of one claim on an event.

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// RegistrationKind distinguishes individual and team registrations.

type RegistrationKind string

const (
	RegistrationKindIndividual RegistrationKind = "individual"
	RegistrationKindTeam       RegistrationKind = "team"
)

// PaymentState is the payment summary status embedded in a registration.

type PaymentState string

const (
	PaymentStateNone    PaymentState = "none"
	PaymentStatePending PaymentState = "pending"
	PaymentStatePaid    PaymentState = "paid"
	PaymentStateFailed  PaymentState = "failed"
)

// TeamMember is one non-leader participant of a team registration.
type TeamMember struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentSummary is the registration-side snapshot of the payment flow.
// Amounts are stored in minor units (paise); display conversion happens
// at the response layer.
type PaymentSummary struct {
	Method           string       `json:"method"`
	Currency         string       `json:"currency"`
	AmountPaise      int64        `json:"amount_paise"`
	Status           PaymentState `json:"status"`
	GatewayOrderID   string       `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string       `json:"gateway_payment_id,omitempty"`
	VerifiedAt       *time.Time   `json:"verified_at,omitempty"`
}

// HistoryEntry is one append-only audit record on a registration.
type HistoryEntry struct {
	Kind string                 `json:"kind"`
	At   time.Time              `json:"at"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// Registration is one person's (or team's) claim to attend an event.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_account_id + created_at
//   - uniqueness guard: at most one active (pending|confirmed) registration
//     per (event, owner), enforced with a conditional guard item keyed by
//     ActiveKey (see the repository).
//
// History is append-only; nothing ever rewrites existing entries.

type Registration struct {
	ID             string             `json:"id"`
	EventRef       string             `json:"event_ref"`
	EventName      string             `json:"event_name,omitempty"`
	OwnerAccountID string             `json:"owner_account_id"`
	OwnerEmail     string             `json:"owner_email"`
	Kind           RegistrationKind   `json:"kind"`
	TeamName       string             `json:"team_name,omitempty"`
	TeamMembers    []TeamMember       `json:"team_members,omitempty"`
	Status         RegistrationStatus `json:"status"`
	Payment        PaymentSummary     `json:"payment"`
	History        []HistoryEntry     `json:"history,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ActiveKey is the uniqueness scope for active registrations.
func ActiveKey(eventRef, ownerAccountID string) string {
	return eventRef + "#" + ownerAccountID
}

// IsActive reports whether the registration holds the (event, owner) slot.
func (r *Registration) IsActive() bool {
	return r.Status == RegistrationStatusPending || r.Status == RegistrationStatusConfirmed
}

// AppendHistory adds an audit entry. History is never truncated or rewritten.
func (r *Registration) AppendHistory(kind string, at time.Time, data map[string]interface{}) {
	r.History = append(r.History, HistoryEntry{Kind: kind, At: at, Data: data})
}
