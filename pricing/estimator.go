package pricing

import (
	"github.com/shopspring/decimal"

	"gcwab-store/models"
)

// Tenors supported by the financing estimator, in months
var Tenors = []int{6, 12, 24, 36}

// RateForTenor returns the total-repayment multiplier configured for the
// given tenor. Unknown tenors fall back to the 6-month rate, matching the
// storefront estimator.
func RateForTenor(config models.EngagementConfig, months int) float64 {
	switch months {
	case 12:
		return config.Rate12M
	case 24:
		return config.Rate24M
	case 36:
		return config.Rate36M
	default:
		return config.Rate6M
	}
}

// MonthlyPayment estimates the monthly payout for financing the given amount
// over the given tenor: amount × rate ÷ months, rounded to whole naira.
// Decimal math keeps large principals exact; the rates are small two-decimal
// multipliers, so float64 storage loses nothing on the way in.
func MonthlyPayment(config models.EngagementConfig, amount int64, months int) int64 {
	if months <= 0 {
		months = 1
	}

	total := decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(RateForTenor(config, months)))
	monthly := total.Div(decimal.NewFromInt(int64(months))).Round(0)
	return monthly.IntPart()
}
