package models

// EngagementConfig holds the storefront engagement settings stored under
// site_settings/engagement_config: the contact phone number and the financing
// multipliers per tenor. Rates are total-repayment multipliers, not APRs.
type EngagementConfig struct {
	PhoneNumber string  `json:"phoneNumber"`
	Rate6M      float64 `json:"rate6m"`
	Rate12M     float64 `json:"rate12m"`
	Rate24M     float64 `json:"rate24m"`
	Rate36M     float64 `json:"rate36m"`
}

// DefaultEngagementConfig returns the hardcoded fallbacks used when no
// settings document has been saved yet
func DefaultEngagementConfig() EngagementConfig {
	return EngagementConfig{
		PhoneNumber: "+2347034632037",
		Rate6M:      1.10,
		Rate12M:     1.15,
		Rate24M:     1.25,
		Rate36M:     1.35,
	}
}

// LikeCountResponse represents the like counter of a vehicle
// Example: {"vehicleId": 3, "likes": 42}
type LikeCountResponse struct {
	VehicleID int64 `json:"vehicleId"`
	Likes     int64 `json:"likes"`
}

// FinanceEstimateResponse represents a financing estimate
// Example: {"amount": 2000000, "months": 12, "rate": 1.15, "monthlyPayment": 191667}
type FinanceEstimateResponse struct {
	Amount         int64   `json:"amount"`
	Months         int     `json:"months"`
	Rate           float64 `json:"rate"`
	MonthlyPayment int64   `json:"monthlyPayment"`
}
