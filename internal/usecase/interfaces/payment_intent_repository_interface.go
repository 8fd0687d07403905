package interfaces

import (
	"context"
	"encoding/json"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.
//
// MarkPaid is the sole concurrency guard of the reconciliation flow: it is a
// conditional transition created -> paid. When the intent is already paid the
// call reports applied=false and returns the current record unchanged, so
// duplicate webhook/verify deliveries converge without locks.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByOrderID(ctx context.Context, gatewayOrderID string) (entities.PaymentIntent, error)
	MarkPaid(ctx context.Context, id string, gatewayPaymentID string, raw json.RawMessage) (intent entities.PaymentIntent, applied bool, err error)
}
