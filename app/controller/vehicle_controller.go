package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"gcwab-store/models"
	"gcwab-store/repository"
	"gcwab-store/service"
)

// VehicleController handles HTTP requests for the automotive showroom
type VehicleController struct {
	repository repository.VehicleRepositoryInterface
	brochure   service.BrochureServiceInterface
	admin      *AdminGate
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(repo repository.VehicleRepositoryInterface, brochure service.BrochureServiceInterface, admin *AdminGate) *VehicleController {
	return &VehicleController{
		repository: repo,
		brochure:   brochure,
		admin:      admin,
	}
}

// ListVehicles handles GET /vehicles
// Vehicles are ordered newest first
func (c *VehicleController) ListVehicles(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListVehicles: Received %s request to %s", r.Method, r.URL.Path)

	vehicles, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ ListVehicles: Error fetching vehicles: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch vehicles: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.VehicleListResponse{
		Total:    len(vehicles),
		Vehicles: vehicles,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListVehicles: Error encoding response: %v", err)
	}
}

// GetVehicle handles GET /vehicles/{id}
func (c *VehicleController) GetVehicle(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetVehicle: Received %s request to %s", r.Method, r.URL.Path)

	id, err := parseIDSuffix(r.URL.Path, "/vehicles/")
	if err != nil {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
		return
	}

	vehicle, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetVehicle: Error fetching vehicle %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to fetch vehicle: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(vehicle); err != nil {
		log.Printf("❌ GetVehicle: Error encoding response: %v", err)
	}
}

// validateSaveVehicleRequest checks the fields shared by create and update
func validateSaveVehicleRequest(req *models.SaveVehicleRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if req.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	return nil
}

// CreateVehicle handles POST /admin/vehicles
func (c *VehicleController) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateVehicle: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	var req models.SaveVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateVehicle: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := validateSaveVehicleRequest(&req); err != nil {
		log.Printf("❌ CreateVehicle: Invalid request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicle, err := c.repository.Create(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateVehicle: Error creating vehicle: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create vehicle: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("🚗 CreateVehicle: Created vehicle id=%d %s %s", vehicle.ID, vehicle.Name, vehicle.Model)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(vehicle); err != nil {
		log.Printf("❌ CreateVehicle: Error encoding response: %v", err)
	}
}

// UpdateVehicle handles PUT /admin/vehicles/{id}
func (c *VehicleController) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateVehicle: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	id, err := parseIDSuffix(r.URL.Path, "/admin/vehicles/")
	if err != nil {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
		return
	}

	var req models.SaveVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateVehicle: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := validateSaveVehicleRequest(&req); err != nil {
		log.Printf("❌ UpdateVehicle: Invalid request: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicle, err := c.repository.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ UpdateVehicle: Error updating vehicle %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to update vehicle: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("🚗 UpdateVehicle: Updated vehicle id=%d", vehicle.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(vehicle); err != nil {
		log.Printf("❌ UpdateVehicle: Error encoding response: %v", err)
	}
}

// DeleteVehicle handles DELETE /admin/vehicles/{id}
func (c *VehicleController) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteVehicle: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	id, err := parseIDSuffix(r.URL.Path, "/admin/vehicles/")
	if err != nil {
		http.Error(w, "Invalid vehicle ID", http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeleteVehicle: Error deleting vehicle %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to delete vehicle: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeleteVehicle: Deleted vehicle id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// RenderBrochure handles GET /admin/vehicles/brochure/render
// Serves the HTML that headless Chrome prints; it carries no admin data
// beyond the public listings, so it is not gated
func (c *VehicleController) RenderBrochure(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RenderBrochure: Received %s request to %s", r.Method, r.URL.Path)

	html, err := c.brochure.RenderBrochureHTML(r.Context())
	if err != nil {
		log.Printf("❌ RenderBrochure: Error rendering brochure HTML: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render brochure: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// DownloadBrochure handles GET /admin/vehicles/brochure
func (c *VehicleController) DownloadBrochure(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DownloadBrochure: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	pdf, err := c.brochure.GeneratePDF(r.Context())
	if err != nil {
		log.Printf("❌ DownloadBrochure: Error generating PDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate brochure: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("📤 DownloadBrochure: Sending PDF, %d bytes", len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="showroom-brochure.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
