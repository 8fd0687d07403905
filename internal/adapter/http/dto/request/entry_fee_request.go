package request

// EntryFeeOrderRequest is the payload for POST /v1/entry-fees/order. The
// caller is always covered; Emails lists additional people to pay for.
type EntryFeeOrderRequest struct {
	Emails []string `json:"emails"`
}

// VerifyPaymentRequest is the client-side checkout confirmation for
// POST /v1/entry-fees/verify. Signature is HMAC-SHA256 over
// "gatewayOrderId|gatewayPaymentId".
type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId" binding:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" binding:"required"`
	Signature        string `json:"signature" binding:"required"`
}
