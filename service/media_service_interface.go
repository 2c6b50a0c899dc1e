package service

import (
	"context"

	"gcwab-store/models"
)

// MediaServiceInterface defines the contract for the media upload pipeline
type MediaServiceInterface interface {
	Upload(ctx context.Context, filename, mimeType string, data []byte) (*models.MediaFile, error)
	GetImage(ctx context.Context, fileID, size string) ([]byte, error)
}
