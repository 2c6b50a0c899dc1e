package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"gcwab-store/service"
)

// maxUploadBytes caps media uploads at 15 MB
const maxUploadBytes = 15 << 20

// MediaController handles HTTP requests for media uploads and optimized images
type MediaController struct {
	media service.MediaServiceInterface
	admin *AdminGate
}

// NewMediaController creates a new MediaController
func NewMediaController(media service.MediaServiceInterface, admin *AdminGate) *MediaController {
	return &MediaController{
		media: media,
		admin: admin,
	}
}

// Upload handles POST /admin/media
// Accepts a multipart form with a "file" field; the original goes to Drive
// and optimized variants are pre-warmed into the local cache
func (c *MediaController) Upload(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Upload: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	if c.media == nil {
		http.Error(w, "Media storage is not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Printf("❌ Upload: Failed to parse multipart form: %v", err)
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("❌ Upload: Missing file field: %v", err)
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Upload: Failed to read file: %v", err)
		http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	if !strings.HasPrefix(mimeType, "image/") {
		log.Printf("❌ Upload: Rejected non-image upload: %s", mimeType)
		http.Error(w, "only image uploads are accepted", http.StatusBadRequest)
		return
	}

	mediaFile, err := c.media.Upload(r.Context(), header.Filename, mimeType, data)
	if err != nil {
		log.Printf("❌ Upload: Error uploading media: %v", err)
		http.Error(w, fmt.Sprintf("Failed to upload media: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Upload: Media stored, file_id=%s", mediaFile.FileID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mediaFile); err != nil {
		log.Printf("❌ Upload: Error encoding response: %v", err)
	}
}

// GetImage handles GET /media/{fileID}/image?size=thumb|medium
// Serves the optimized JPEG variant, fetching from Drive on a cache miss
func (c *MediaController) GetImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetImage: Received %s request to %s", r.Method, r.URL.Path)

	if c.media == nil {
		http.Error(w, "Media storage is not configured", http.StatusServiceUnavailable)
		return
	}

	fileID := strings.TrimPrefix(r.URL.Path, "/media/")
	fileID = strings.TrimSuffix(fileID, "/image")
	if fileID == "" || strings.Contains(fileID, "/") {
		http.Error(w, "Invalid media path", http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	data, err := c.media.GetImage(r.Context(), fileID, size)
	if err != nil {
		log.Printf("❌ GetImage: Error fetching media %s: %v", fileID, err)
		http.Error(w, fmt.Sprintf("Failed to fetch media: %v", err), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
