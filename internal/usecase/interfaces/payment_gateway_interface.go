package interfaces

import "context"

// IPaymentGateway abstracts the external payment provider (e.g. Razorpay).
//
// CreateOrder opens a gateway order for the given amount and returns the
// gateway-assigned order id. The call must respect the context deadline; a
// timeout is a failure, never an assumed success.

type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (gatewayOrderID string, err error)
}
