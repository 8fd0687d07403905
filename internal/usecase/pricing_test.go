package usecase

import "testing"

func TestComputePricing_PassFeesOn(t *testing.T) {
	cfg := PricingConfig{BaseFeeINR: 250, PassGatewayFees: true, GatewayFeeRate: 0.02, TaxRate: 0.18}

	t.Run("single head", func(t *testing.T) {
		b := ComputePricing(cfg, 1)
		if b.Count != 1 {
			t.Fatalf("expected count 1, got %d", b.Count)
		}
		if b.PerHead.BasePaise != 25000 {
			t.Fatalf("expected base 25000, got %d", b.PerHead.BasePaise)
		}
		if b.PerHead.GatewayFeePaise != 500 {
			t.Fatalf("expected fee 500, got %d", b.PerHead.GatewayFeePaise)
		}
		if b.PerHead.TaxPaise != 90 {
			t.Fatalf("expected tax 90, got %d", b.PerHead.TaxPaise)
		}
		if b.PerHead.TotalPaise != 25590 {
			t.Fatalf("expected total 25590, got %d", b.PerHead.TotalPaise)
		}
		if b.Totals != b.PerHead {
			t.Fatalf("totals should equal per-head for one head: %+v", b.Totals)
		}
	})

	t.Run("multiple heads multiply the rounded per-head", func(t *testing.T) {
		b := ComputePricing(cfg, 4)
		if b.Totals.BasePaise != 100000 {
			t.Fatalf("expected base total 100000, got %d", b.Totals.BasePaise)
		}
		if b.Totals.GatewayFeePaise != 2000 {
			t.Fatalf("expected fee total 2000, got %d", b.Totals.GatewayFeePaise)
		}
		if b.Totals.TaxPaise != 360 {
			t.Fatalf("expected tax total 360, got %d", b.Totals.TaxPaise)
		}
		if b.Totals.TotalPaise != 4*b.PerHead.TotalPaise {
			t.Fatalf("totals must be per-head times count: %+v", b.Totals)
		}
	})

	t.Run("fractional base rounds per head before multiplying", func(t *testing.T) {
		frac := PricingConfig{BaseFeeINR: 99.995, PassGatewayFees: true, GatewayFeeRate: 0.02, TaxRate: 0.18}
		b := ComputePricing(frac, 3)
		if b.PerHead.BasePaise != 10000 {
			t.Fatalf("expected rounded base 10000, got %d", b.PerHead.BasePaise)
		}
		if b.Totals.TotalPaise != 3*b.PerHead.TotalPaise {
			t.Fatalf("totals must multiply the already-rounded per-head")
		}
	})
}

func TestComputePricing_PassFeesOff(t *testing.T) {
	cfg := PricingConfig{BaseFeeINR: 250, PassGatewayFees: false, GatewayFeeRate: 0.02, TaxRate: 0.18}
	b := ComputePricing(cfg, 2)
	if b.PerHead.GatewayFeePaise != 0 || b.PerHead.TaxPaise != 0 {
		t.Fatalf("expected zero fee/tax when not passed through, got %+v", b.PerHead)
	}
	if b.PerHead.TotalPaise != 25000 {
		t.Fatalf("expected base-only total 25000, got %d", b.PerHead.TotalPaise)
	}
	if b.Totals.TotalPaise != 50000 {
		t.Fatalf("expected totals 50000, got %d", b.Totals.TotalPaise)
	}
}

func TestPricingConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENTRY_FEE_INR", "")
		t.Setenv("PASS_GATEWAY_FEES_TO_PAYER", "")
		t.Setenv("GATEWAY_FEE_RATE", "")
		t.Setenv("TAX_RATE", "")

		cfg := PricingConfigFromEnv()
		if cfg.BaseFeeINR != 250 || !cfg.PassGatewayFees || cfg.GatewayFeeRate != 0.02 || cfg.TaxRate != 0.18 {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ENTRY_FEE_INR", "500")
		t.Setenv("PASS_GATEWAY_FEES_TO_PAYER", "false")
		t.Setenv("GATEWAY_FEE_RATE", "0.03")
		t.Setenv("TAX_RATE", "0.28")

		cfg := PricingConfigFromEnv()
		if cfg.BaseFeeINR != 500 || cfg.PassGatewayFees || cfg.GatewayFeeRate != 0.03 || cfg.TaxRate != 0.28 {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		t.Setenv("ENTRY_FEE_INR", "abc")
		t.Setenv("PASS_GATEWAY_FEES_TO_PAYER", "maybe")
		t.Setenv("GATEWAY_FEE_RATE", "")
		t.Setenv("TAX_RATE", "")

		cfg := PricingConfigFromEnv()
		if cfg.BaseFeeINR != 250 || !cfg.PassGatewayFees {
			t.Fatalf("unexpected fallback: %+v", cfg)
		}
	})
}

func TestFromPaise(t *testing.T) {
	if FromPaise(25590) != 255.90 {
		t.Fatalf("expected 255.90, got %v", FromPaise(25590))
	}
	if FromPaise(0) != 0 {
		t.Fatalf("expected 0, got %v", FromPaise(0))
	}
}
