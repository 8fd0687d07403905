package response

import (
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase"
)

type TeamMemberResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PaymentSummaryResponse struct {
	Method           string     `json:"method"`
	Currency         string     `json:"currency"`
	Amount           float64    `json:"amount"`
	Status           string     `json:"status"`
	GatewayOrderID   string     `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string     `json:"gateway_payment_id,omitempty"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
}

type HistoryEntryResponse struct {
	Kind string                 `json:"kind"`
	At   time.Time              `json:"at"`
	Data map[string]interface{} `json:"data,omitempty"`
}

type RegistrationResponse struct {
	ID          string                 `json:"id"`
	EventID     string                 `json:"event_id"`
	EventName   string                 `json:"event_name,omitempty"`
	OwnerEmail  string                 `json:"owner_email"`
	Type        string                 `json:"type"`
	TeamName    string                 `json:"team_name,omitempty"`
	TeamMembers []TeamMemberResponse   `json:"team_members,omitempty"`
	Status      string                 `json:"status"`
	Payment     PaymentSummaryResponse `json:"payment"`
	History     []HistoryEntryResponse `json:"history,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func FromRegistration(reg entities.Registration) RegistrationResponse {
	res := RegistrationResponse{
		ID:         reg.ID,
		EventID:    reg.EventRef,
		EventName:  reg.EventName,
		OwnerEmail: reg.OwnerEmail,
		Type:       string(reg.Kind),
		TeamName:   reg.TeamName,
		Status:     string(reg.Status),
		Payment: PaymentSummaryResponse{
			Method:           reg.Payment.Method,
			Currency:         reg.Payment.Currency,
			Amount:           usecase.FromPaise(reg.Payment.AmountPaise),
			Status:           string(reg.Payment.Status),
			GatewayOrderID:   reg.Payment.GatewayOrderID,
			GatewayPaymentID: reg.Payment.GatewayPaymentID,
			VerifiedAt:       reg.Payment.VerifiedAt,
		},
		Notes:     reg.Notes,
		CreatedAt: reg.CreatedAt,
	}
	for _, m := range reg.TeamMembers {
		res.TeamMembers = append(res.TeamMembers, TeamMemberResponse(m))
	}
	for _, h := range reg.History {
		res.History = append(res.History, HistoryEntryResponse{Kind: h.Kind, At: h.At, Data: h.Data})
	}
	return res
}

// PaymentRequirementResponse is the "what does the client owe" block attached
// to registration create responses.
type PaymentRequirementResponse struct {
	NeedsPayment   bool                  `json:"needsPayment"`
	Amount         float64               `json:"amount,omitempty"`
	Currency       string                `json:"currency,omitempty"`
	GatewayOrderID string                `json:"gatewayOrderId,omitempty"`
	KeyID          string                `json:"keyId,omitempty"`
	Breakdown      *FeeBreakdownResponse `json:"breakdown,omitempty"`
}

type CreateRegistrationResponse struct {
	Success      bool                       `json:"success"`
	Registration RegistrationResponse       `json:"registration"`
	Payment      PaymentRequirementResponse `json:"payment"`
}

func FromRegistrationOutcome(out usecase.RegistrationOutcome, gatewayKeyID string) CreateRegistrationResponse {
	res := CreateRegistrationResponse{
		Success:      true,
		Registration: FromRegistration(out.Registration),
		Payment: PaymentRequirementResponse{
			NeedsPayment:   out.Payment.NeedsPayment,
			Currency:       out.Payment.Currency,
			GatewayOrderID: out.Payment.GatewayOrderID,
		},
	}
	if out.Payment.NeedsPayment {
		res.Payment.Amount = usecase.FromPaise(out.Payment.AmountPaise)
		res.Payment.KeyID = gatewayKeyID
	}
	if out.Payment.Breakdown != nil {
		b := FromFeeBreakdown(*out.Payment.Breakdown)
		res.Payment.Breakdown = &b
	}
	return res
}

type RegistrationListResponse struct {
	Success bool                   `json:"success"`
	Items   []RegistrationResponse `json:"items"`
}

func FromRegistrations(regs []entities.Registration) RegistrationListResponse {
	res := RegistrationListResponse{Success: true, Items: make([]RegistrationResponse, 0, len(regs))}
	for _, reg := range regs {
		res.Items = append(res.Items, FromRegistration(reg))
	}
	return res
}
