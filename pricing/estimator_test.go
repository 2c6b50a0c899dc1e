package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gcwab-store/models"
)

func TestMonthlyPayment(t *testing.T) {
	config := models.DefaultEngagementConfig()

	testCases := []struct {
		name     string
		amount   int64
		months   int
		expected int64
	}{
		{name: "12 months default rate", amount: 2_000_000, months: 12, expected: 191_667},
		{name: "6 months", amount: 1_200_000, months: 6, expected: 220_000},
		{name: "24 months", amount: 2_400_000, months: 24, expected: 125_000},
		{name: "36 months", amount: 3_600_000, months: 36, expected: 135_000},
		{name: "unknown tenor falls back to 6m rate", amount: 1_000_000, months: 9, expected: 122_222},
		{name: "zero months treated as one", amount: 500_000, months: 0, expected: 550_000},
		{name: "zero amount", amount: 0, months: 12, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MonthlyPayment(config, tc.amount, tc.months))
		})
	}
}

func TestMonthlyPaymentLargePrincipalStaysExact(t *testing.T) {
	config := models.EngagementConfig{Rate6M: 1.10, Rate12M: 1.15, Rate24M: 1.25, Rate36M: 1.35}

	// 15M naira over 24 months at 1.25 => 15,000,000 * 1.25 / 24 = 781,250
	assert.Equal(t, int64(781_250), MonthlyPayment(config, 15_000_000, 24))
}

func TestRateForTenor(t *testing.T) {
	config := models.EngagementConfig{Rate6M: 1.1, Rate12M: 1.2, Rate24M: 1.3, Rate36M: 1.4}

	assert.Equal(t, 1.1, RateForTenor(config, 6))
	assert.Equal(t, 1.2, RateForTenor(config, 12))
	assert.Equal(t, 1.3, RateForTenor(config, 24))
	assert.Equal(t, 1.4, RateForTenor(config, 36))
	assert.Equal(t, 1.1, RateForTenor(config, 18))
}
