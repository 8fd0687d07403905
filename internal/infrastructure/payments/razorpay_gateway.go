package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

const defaultOrderTimeout = 15 * time.Second

// RazorpayGateway creates gateway orders via the Razorpay SDK.
//
// The SDK has no context support, so CreateOrder runs the call in a goroutine
// and enforces the context deadline itself. A timeout is reported as a
// failure; the order is never assumed to exist.

type RazorpayGateway struct {
	client   *razorpay.Client
	mockMode bool
}

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] Razorpay client initialized")
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (string, error) {
	if g != nil && g.mockMode {
		id := "order_MOCK" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock order created order_id=%s amount_paise=%d", id, amountPaise)
		return id, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrRazorpayGatewayNotConfigured
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultOrderTimeout)
		defer cancel()
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		noteMap := make(map[string]interface{}, len(notes))
		for k, v := range notes {
			noteMap[k] = v
		}
		data["notes"] = noteMap
	}

	log.Printf("[payment][gateway] order create start amount_paise=%d currency=%s receipt=%s", amountPaise, currency, receipt)

	type orderResult struct {
		resp map[string]interface{}
		err  error
	}
	done := make(chan orderResult, 1)
	go func() {
		resp, err := g.client.Order.Create(data, nil)
		done <- orderResult{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[payment][gateway] order create timed out err=%v", ctx.Err())
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			log.Printf("[payment][gateway] sdk order create failed err=%v", res.err)
			return "", res.err
		}
		id, ok := res.resp["id"].(string)
		if !ok || id == "" {
			log.Printf("[payment][gateway] order response missing id")
			return "", fmt.Errorf("razorpay order response missing id")
		}
		log.Printf("[payment][gateway] order create success order_id=%s", id)
		return id, nil
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
