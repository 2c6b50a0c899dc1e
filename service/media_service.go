package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gcwab-store/models"
)

// MediaService runs the upload pipeline: originals go to Drive, optimized
// JPEG variants are cached on local disk and served from there.
type MediaService struct {
	drive DriveServiceInterface
}

// NewMediaService creates a new MediaService
func NewMediaService(drive DriveServiceInterface) *MediaService {
	return &MediaService{drive: drive}
}

// Ensure MediaService implements MediaServiceInterface
var _ MediaServiceInterface = (*MediaService)(nil)

// Upload stores the original image in Drive under a generated name and
// pre-warms the thumb and medium cache variants
func (s *MediaService) Upload(ctx context.Context, filename, mimeType string, data []byte) (*models.MediaFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	log.Printf("📤 Upload: Storing media original name=%s size=%d bytes", name, len(data))

	fileID, err := s.drive.UploadImage(name, mimeType, data)
	if err != nil {
		log.Printf("❌ Upload: Error uploading to Drive: %v", err)
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	// Pre-warm the cached variants; failures here only cost a later re-fetch
	for _, size := range []string{"thumb", "medium"} {
		optimized, err := OptimizeImage(data, size)
		if err != nil {
			log.Printf("⚠️ Upload: Failed to optimize %s variant: %v", size, err)
			continue
		}
		if err := WriteMediaCache(MediaCachePath(fileID, size), optimized); err != nil {
			log.Printf("⚠️ Upload: Failed to cache %s variant: %v", size, err)
		}
	}

	log.Printf("✅ Upload: Media stored with file_id=%s", fileID)

	return &models.MediaFile{
		FileID:    fileID,
		URL:       PublicURL(fileID),
		ThumbURL:  fmt.Sprintf("/media/%s/image?size=thumb", fileID),
		MediumURL: fmt.Sprintf("/media/%s/image?size=medium", fileID),
	}, nil
}

// GetImage serves an optimized variant, fetching and optimizing from Drive on
// a cache miss
func (s *MediaService) GetImage(ctx context.Context, fileID, size string) ([]byte, error) {
	cachePath := MediaCachePath(fileID, size)
	if MediaCacheExists(cachePath) {
		return ReadMediaCache(cachePath)
	}

	log.Printf("🔍 GetImage: Cache miss for file_id=%s size=%s, fetching from Drive", fileID, size)

	data, err := s.drive.DownloadImage(fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media original: %w", err)
	}

	optimized, err := OptimizeImage(data, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize media: %w", err)
	}

	if err := WriteMediaCache(cachePath, optimized); err != nil {
		// Serve the bytes anyway; only the cache write failed
		log.Printf("⚠️ GetImage: Failed to cache variant: %v", err)
	}

	return optimized, nil
}
