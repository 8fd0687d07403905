package entities

import (
	"encoding/json"
	"time"
)

// IntentStatus represents the gateway order lifecycle.
//
// Transitions are monotonic: created -> paid or created -> failed.
// A paid intent never regresses.

type IntentStatus string

const (
	IntentStatusCreated IntentStatus = "created"
	IntentStatusPaid    IntentStatus = "paid"
	IntentStatusFailed  IntentStatus = "failed"
)

// IntentKind distinguishes the one-time entry fee from any other charge.

type IntentKind string

const (
	IntentKindEntryFee IntentKind = "entry_fee"
	IntentKindOther    IntentKind = "other"
)

// PaymentIntent records one order created on the payment gateway: who
// initiated it, which e-mails it covers, and its reconciliation state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): gateway_order_id
//
// RawCallbackPayload keeps the original webhook/verify evidence (JSON) for
// traceability/audit. GatewayOrderID is the reconciliation key shared with
// the external gateway.

type PaymentIntent struct {
	ID               string       `json:"id"`
	PayerAccountID   string       `json:"payer_account_id"`
	RegistrationRef  string       `json:"registration_ref,omitempty"`
	Kind             IntentKind   `json:"kind"`
	CoveredEmails    []string     `json:"covered_emails"`
	AmountPaise      int64        `json:"amount_paise"`
	Currency         string       `json:"currency"`
	GatewayOrderID   string       `json:"gateway_order_id"`
	GatewayPaymentID string       `json:"gateway_payment_id,omitempty"`
	Status           IntentStatus `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`

	RawCallbackPayload json.RawMessage `json:"raw_callback_payload,omitempty"`
}
