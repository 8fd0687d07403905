package usecase

import (
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultCurrency is the only currency the symposium charges in.
const DefaultCurrency = "INR"

// PricingConfig drives the per-head entry-fee composition.
//
// When PassGatewayFees is false the organizer absorbs the gateway fee and tax:
// both components are reported as zero and only the base fee is charged.
type PricingConfig struct {
	BaseFeeINR      float64
	PassGatewayFees bool
	GatewayFeeRate  float64
	TaxRate         float64
}

// PricingConfigFromEnv reads the fee composition from the environment.
//
// Env vars: ENTRY_FEE_INR (default 250), PASS_GATEWAY_FEES_TO_PAYER
// (default true), GATEWAY_FEE_RATE (default 0.02), TAX_RATE (default 0.18).
func PricingConfigFromEnv() PricingConfig {
	return PricingConfig{
		BaseFeeINR:      getenvFloat("ENTRY_FEE_INR", 250),
		PassGatewayFees: getenvBool("PASS_GATEWAY_FEES_TO_PAYER", true),
		GatewayFeeRate:  getenvFloat("GATEWAY_FEE_RATE", 0.02),
		TaxRate:         getenvFloat("TAX_RATE", 0.18),
	}
}

// HeadAmounts is the per-head fee split, in paise.
type HeadAmounts struct {
	BasePaise       int64
	GatewayFeePaise int64
	TaxPaise        int64
	TotalPaise      int64
}

// FeeBreakdown is the full charge for a group of unpaid attendees.
type FeeBreakdown struct {
	Count   int
	PerHead HeadAmounts
	Totals  HeadAmounts
}

// ComputePricing composes the charge for count unpaid heads.
//
// Per head: base, plus (if passed through) the gateway fee as a percentage of
// base, plus tax as a percentage of that fee. Each component is rounded to
// whole paise per head, then multiplied by count.
func ComputePricing(cfg PricingConfig, count int) FeeBreakdown {
	base := inPaise(cfg.BaseFeeINR)

	var fee, tax int64
	if cfg.PassGatewayFees {
		fee = int64(math.Round(float64(base) * cfg.GatewayFeeRate))
		tax = int64(math.Round(float64(fee) * cfg.TaxRate))
	}

	perHead := HeadAmounts{
		BasePaise:       base,
		GatewayFeePaise: fee,
		TaxPaise:        tax,
		TotalPaise:      base + fee + tax,
	}
	n := int64(count)
	return FeeBreakdown{
		Count:   count,
		PerHead: perHead,
		Totals: HeadAmounts{
			BasePaise:       perHead.BasePaise * n,
			GatewayFeePaise: perHead.GatewayFeePaise * n,
			TaxPaise:        perHead.TaxPaise * n,
			TotalPaise:      perHead.TotalPaise * n,
		},
	}
}

func inPaise(inr float64) int64 {
	return int64(math.Round(inr * 100))
}

// FromPaise converts minor units to the display amount.
func FromPaise(paise int64) float64 {
	return float64(paise) / 100
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
