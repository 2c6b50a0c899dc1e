package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"gcwab-store/models"
	"gcwab-store/pricing"
	"gcwab-store/repository"
	"gcwab-store/utils"
)

// EngagementController handles likes, financing estimates and the
// engagement settings document
type EngagementController struct {
	repository repository.EngagementRepositoryInterface
	admin      *AdminGate
}

// NewEngagementController creates a new EngagementController
func NewEngagementController(repo repository.EngagementRepositoryInterface, admin *AdminGate) *EngagementController {
	return &EngagementController{
		repository: repo,
		admin:      admin,
	}
}

// vehicleIDFromLikePath extracts the vehicle ID from /vehicles/{id}/like(s)
func vehicleIDFromLikePath(path, suffix string) (int64, error) {
	raw := strings.TrimPrefix(path, "/vehicles/")
	raw = strings.TrimSuffix(raw, suffix)
	raw = strings.Trim(raw, "/")
	if raw == "" || strings.Contains(raw, "/") {
		return 0, fmt.Errorf("no vehicle ID in path %q", path)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid vehicle ID %q", raw)
	}
	return id, nil
}

// writeLikeCount renders the like counter
func writeLikeCount(w http.ResponseWriter, vehicleID, likes int64) {
	response := models.LikeCountResponse{
		VehicleID: vehicleID,
		Likes:     likes,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Error encoding like count response: %v", err)
	}
}

// AddLike handles POST /vehicles/{id}/like
func (c *EngagementController) AddLike(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddLike: Received %s request to %s", r.Method, r.URL.Path)

	vehicleID, err := vehicleIDFromLikePath(r.URL.Path, "/like")
	if err != nil {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
		return
	}

	likes, err := c.repository.AddLike(r.Context(), vehicleID)
	if err != nil {
		log.Printf("❌ AddLike: Error adding like for vehicle %d: %v", vehicleID, err)
		http.Error(w, fmt.Sprintf("Failed to add like: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ AddLike: vehicle_id=%d likes=%d", vehicleID, likes)
	writeLikeCount(w, vehicleID, likes)
}

// RemoveLike handles DELETE /vehicles/{id}/like
// The counter never goes below zero
func (c *EngagementController) RemoveLike(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RemoveLike: Received %s request to %s", r.Method, r.URL.Path)

	vehicleID, err := vehicleIDFromLikePath(r.URL.Path, "/like")
	if err != nil {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
		return
	}

	likes, err := c.repository.RemoveLike(r.Context(), vehicleID)
	if err != nil {
		log.Printf("❌ RemoveLike: Error removing like for vehicle %d: %v", vehicleID, err)
		http.Error(w, fmt.Sprintf("Failed to remove like: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ RemoveLike: vehicle_id=%d likes=%d", vehicleID, likes)
	writeLikeCount(w, vehicleID, likes)
}

// GetLikes handles GET /vehicles/{id}/likes
func (c *EngagementController) GetLikes(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetLikes: Received %s request to %s", r.Method, r.URL.Path)

	vehicleID, err := vehicleIDFromLikePath(r.URL.Path, "/likes")
	if err != nil {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
		return
	}

	likes, err := c.repository.GetLikes(r.Context(), vehicleID)
	if err != nil {
		log.Printf("❌ GetLikes: Error fetching likes for vehicle %d: %v", vehicleID, err)
		http.Error(w, fmt.Sprintf("Failed to fetch likes: %v", err), http.StatusInternalServerError)
		return
	}

	writeLikeCount(w, vehicleID, likes)
}

// EstimateFinance handles GET /finance/estimate?amount=&months=
// Unknown tenors fall back to the 6-month rate
func (c *EngagementController) EstimateFinance(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 EstimateFinance: Received %s request to %s", r.Method, r.URL.Path)

	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil || amount <= 0 {
		http.Error(w, "amount must be a positive integer", http.StatusBadRequest)
		return
	}

	months, err := strconv.Atoi(r.URL.Query().Get("months"))
	if err != nil || months <= 0 {
		http.Error(w, "months must be a positive integer", http.StatusBadRequest)
		return
	}

	config, err := c.repository.GetEngagementConfig(r.Context())
	if err != nil {
		log.Printf("❌ EstimateFinance: Error loading engagement config: %v", err)
		http.Error(w, fmt.Sprintf("Failed to load financing rates: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.FinanceEstimateResponse{
		Amount:         amount,
		Months:         months,
		Rate:           pricing.RateForTenor(config, months),
		MonthlyPayment: pricing.MonthlyPayment(config, amount, months),
	}

	log.Printf("💰 EstimateFinance: amount=%s months=%d monthly=%s", utils.FormatNaira(amount), months, utils.FormatNaira(response.MonthlyPayment))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ EstimateFinance: Error encoding response: %v", err)
	}
}

// GetEngagementConfig handles GET /admin/settings/engagement
func (c *EngagementController) GetEngagementConfig(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetEngagementConfig: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	config, err := c.repository.GetEngagementConfig(r.Context())
	if err != nil {
		log.Printf("❌ GetEngagementConfig: Error loading config: %v", err)
		http.Error(w, fmt.Sprintf("Failed to load settings: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(config); err != nil {
		log.Printf("❌ GetEngagementConfig: Error encoding response: %v", err)
	}
}

// UpdateEngagementConfig handles PUT /admin/settings/engagement
// The phone number is normalized to +234 form before saving
func (c *EngagementController) UpdateEngagementConfig(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateEngagementConfig: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	var config models.EngagementConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		log.Printf("❌ UpdateEngagementConfig: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	config.PhoneNumber = utils.NormalizePhone(config.PhoneNumber)
	if !utils.IsValidPhone(config.PhoneNumber) {
		log.Printf("❌ UpdateEngagementConfig: Invalid phone number: %s", config.PhoneNumber)
		http.Error(w, "phoneNumber is not a valid Nigerian phone number", http.StatusBadRequest)
		return
	}

	for _, rate := range []float64{config.Rate6M, config.Rate12M, config.Rate24M, config.Rate36M} {
		if rate < 1.0 {
			http.Error(w, "rates must be at least 1.0", http.StatusBadRequest)
			return
		}
	}

	if err := c.repository.SaveEngagementConfig(r.Context(), config); err != nil {
		log.Printf("❌ UpdateEngagementConfig: Error saving config: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save settings: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateEngagementConfig: Settings saved, phone=%s", config.PhoneNumber)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(config); err != nil {
		log.Printf("❌ UpdateEngagementConfig: Error encoding response: %v", err)
	}
}
