package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8002" {
		t.Fatalf("expected default port 8002, got %q", cfg.Port)
	}
	if cfg.RateEntryLevel != 5.00 || cfg.RateMidLevel != 6.00 || cfg.RateSeniorLevel != 8.00 {
		t.Fatalf("unexpected default rate table: %v %v %v",
			cfg.RateEntryLevel, cfg.RateMidLevel, cfg.RateSeniorLevel)
	}
	if cfg.CommissionFlatRate != 5.00 {
		t.Fatalf("expected default flat rate 5.00, got %v", cfg.CommissionFlatRate)
	}
	if cfg.HighPerformerMinRate != 0.80 {
		t.Fatalf("expected default threshold 0.80, got %v", cfg.HighPerformerMinRate)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_SENIOR_LEVEL", "9.5")
	t.Setenv("COMMISSION_FLAT_RATE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.RateSeniorLevel != 9.5 {
		t.Fatalf("expected senior rate override, got %v", cfg.RateSeniorLevel)
	}
	// bad floats keep the default
	if cfg.CommissionFlatRate != 5.00 {
		t.Fatalf("expected default on unparseable float, got %v", cfg.CommissionFlatRate)
	}
}
