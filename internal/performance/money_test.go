package performance

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

func TestRateTable_Defaults(t *testing.T) {
	rates := DefaultRateTable()

	cases := []struct {
		level model.ExperienceLevel
		want  string
	}{
		{model.ExperienceEntry, "5.00"},
		{model.ExperienceMid, "6.00"},
		{model.ExperienceSenior, "8.00"},
		{model.ExperienceUnknown, "5.00"}, // missing level falls back to entry
	}
	for _, c := range cases {
		if got := FormatAmount(rates.ForLevel(c.level)); got != c.want {
			t.Fatalf("level %q: expected rate %s, got %s", c.level, c.want, got)
		}
	}
}

func TestAmount_FlatVsTiered(t *testing.T) {
	rates := DefaultRateTable()

	flat := rates.Amount(20, model.ExperienceSenior, PayPolicyFlat)
	if got := FormatAmount(flat); got != "100.00" {
		t.Fatalf("flat commission for 20h: expected 100.00, got %s", got)
	}

	tiered := rates.Amount(20, model.ExperienceSenior, PayPolicyTiered)
	if got := FormatAmount(tiered); got != "160.00" {
		t.Fatalf("senior tiered for 20h: expected 160.00, got %s", got)
	}
}

func TestAmount_RoundsOnlyAtFormat(t *testing.T) {
	rates := RateTable{
		EntryLevel:     decimal.NewFromFloat(5.555),
		FlatCommission: decimal.NewFromFloat(5.555),
	}

	// 3 x (1.111h * 5.555) accumulated at full precision, then formatted once
	sum := decimal.Zero
	for i := 0; i < 3; i++ {
		sum = sum.Add(rates.Amount(1.111, model.ExperienceEntry, PayPolicyTiered))
	}
	if got := FormatAmount(sum); got != "18.51" {
		t.Fatalf("expected full-precision accumulation to format as 18.51, got %s", got)
	}
}

func TestAmount_MalformedHours(t *testing.T) {
	rates := DefaultRateTable()
	if got := FormatAmount(rates.Amount(-4, model.ExperienceEntry, PayPolicyFlat)); got != "0.00" {
		t.Fatalf("negative hours must coerce to 0, got %s", got)
	}
}
