package request

import (
	"strings"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase"
)

type TeamMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TeamRequest struct {
	Name    string              `json:"name"`
	Members []TeamMemberRequest `json:"members"`
}

// CreateRegistrationRequest is the payload for POST /v1/registrations.
// Field-level validation beyond binding tags happens in the use case, where
// it can produce structured errors.
type CreateRegistrationRequest struct {
	EventID   string       `json:"eventId" binding:"required"`
	EventName string       `json:"eventName"`
	Type      string       `json:"type" binding:"required,oneof=individual team"`
	Team      *TeamRequest `json:"team"`
	Notes     string       `json:"notes"`
}

// ToCommand resolves the payload into the orchestrator command for the
// authenticated caller.
func (r CreateRegistrationRequest) ToCommand(accountID, email string) usecase.CreateRegistrationCommand {
	cmd := usecase.CreateRegistrationCommand{
		AccountID: accountID,
		Email:     email,
		EventRef:  strings.TrimSpace(r.EventID),
		EventName: strings.TrimSpace(r.EventName),
		Kind:      entities.RegistrationKind(r.Type),
		Notes:     strings.TrimSpace(r.Notes),
	}
	if r.Team != nil {
		cmd.TeamName = strings.TrimSpace(r.Team.Name)
		for _, m := range r.Team.Members {
			cmd.Members = append(cmd.Members, entities.TeamMember{Name: m.Name, Email: m.Email})
		}
	}
	return cmd
}

// CheckoutAckRequest is the payload for POST /v1/registrations/:id/checkout-ack.
// Everything here is audit data; nothing in it is trusted.
type CheckoutAckRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
	Notes     string `json:"notes"`
}

func (r CheckoutAckRequest) ToHistoryData() map[string]interface{} {
	return map[string]interface{}{
		"order_id":   r.OrderID,
		"payment_id": r.PaymentID,
		"signature":  r.Signature,
		"notes":      r.Notes,
	}
}
