package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// The gateway signs its callbacks with HMAC-SHA256, hex encoded. The webhook
// signature covers the exact raw request body; the client-verify signature
// covers "orderID|paymentID". Each uses its own secret.

func verifyWebhookSignature(rawBody []byte, signature, secret string) bool {
	return hmacMatches(rawBody, signature, secret)
}

func verifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature, secret string) bool {
	return hmacMatches([]byte(gatewayOrderID+"|"+gatewayPaymentID), signature, secret)
}

func hmacMatches(message []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
