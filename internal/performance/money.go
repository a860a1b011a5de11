package performance

import (
	"github.com/shopspring/decimal"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

// PayPolicy selects which of the two coexisting pay schemes applies. Payroll
// views bill with the experience-tiered table; the aggregate commission
// report and its CSV export bill a single flat rate for everyone.
type PayPolicy int

const (
	PayPolicyTiered PayPolicy = iota
	PayPolicyFlat
)

// RateTable holds the hourly rates in effect. Amounts accumulate at full
// decimal precision; rounding to 2 places happens only when formatting.
type RateTable struct {
	EntryLevel     decimal.Decimal
	MidLevel       decimal.Decimal
	SeniorLevel    decimal.Decimal
	FlatCommission decimal.Decimal
}

func DefaultRateTable() RateTable {
	return RateTable{
		EntryLevel:     decimal.NewFromInt(5),
		MidLevel:       decimal.NewFromInt(6),
		SeniorLevel:    decimal.NewFromInt(8),
		FlatCommission: decimal.NewFromInt(5),
	}
}

// ForLevel returns the tiered hourly rate, defaulting to entry level for a
// missing or unknown experience level.
func (t RateTable) ForLevel(level model.ExperienceLevel) decimal.Decimal {
	switch level {
	case model.ExperienceMid:
		return t.MidLevel
	case model.ExperienceSenior:
		return t.SeniorLevel
	}
	return t.EntryLevel
}

// Rate resolves the hourly rate for a user under the given policy.
func (t RateTable) Rate(level model.ExperienceLevel, policy PayPolicy) decimal.Decimal {
	if policy == PayPolicyFlat {
		return t.FlatCommission
	}
	return t.ForLevel(level)
}

// Amount computes hours x rate for the user under the given policy.
func (t RateTable) Amount(hours float64, level model.ExperienceLevel, policy PayPolicy) decimal.Decimal {
	if hours != hours || hours < 0 {
		hours = 0
	}
	return decimal.NewFromFloat(hours).Mul(t.Rate(level, policy))
}

// FormatAmount renders a monetary value with exactly 2 decimal places. This
// is the only place rounding happens.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
