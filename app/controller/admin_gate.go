package controller

import (
	"log"
	"net/http"
	"os"
)

// AdminGate authorizes admin requests by matching the X-Admin-Id header
// against the configured admin IDs
type AdminGate struct {
	adminIDs []string
}

// NewAdminGate creates an AdminGate for the given IDs; empty IDs are dropped
func NewAdminGate(adminIDs ...string) *AdminGate {
	gate := &AdminGate{}
	for _, id := range adminIDs {
		if id != "" {
			gate.adminIDs = append(gate.adminIDs, id)
		}
	}
	return gate
}

// NewAdminGateFromEnv builds the gate from ADMIN_ID_1 and ADMIN_ID_2
func NewAdminGateFromEnv() *AdminGate {
	gate := NewAdminGate(os.Getenv("ADMIN_ID_1"), os.Getenv("ADMIN_ID_2"))
	if len(gate.adminIDs) == 0 {
		log.Printf("⚠️  Warning: No admin IDs configured, admin endpoints will reject all requests")
	}
	return gate
}

// IsAdmin reports whether the request carries a valid admin ID
func (g *AdminGate) IsAdmin(r *http.Request) bool {
	adminID := r.Header.Get("X-Admin-Id")
	if adminID == "" {
		return false
	}
	for _, id := range g.adminIDs {
		if adminID == id {
			return true
		}
	}
	return false
}

// Authorize rejects the request with 403 when it lacks a valid admin ID.
// Returns true when the caller may proceed.
func (g *AdminGate) Authorize(w http.ResponseWriter, r *http.Request) bool {
	if !g.IsAdmin(r) {
		log.Printf("❌ Admin check failed for %s %s", r.Method, r.URL.Path)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}
