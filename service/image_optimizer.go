package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	mediaCacheDir = "cache/media"
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// EnsureMediaCacheDir ensures the media cache directory exists
func EnsureMediaCacheDir() error {
	if err := os.MkdirAll(mediaCacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create media cache directory: %w", err)
	}
	return nil
}

// MediaCachePath returns the cache file path for a given Drive file ID and size
func MediaCachePath(fileID, size string) string {
	return filepath.Join(mediaCacheDir, fmt.Sprintf("media_%s_%s.jpg", fileID, size))
}

// MediaCacheExists checks whether a cached variant exists
func MediaCacheExists(cachePath string) bool {
	_, err := os.Stat(cachePath)
	return err == nil
}

// ReadMediaCache reads a cached variant
func ReadMediaCache(cachePath string) ([]byte, error) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read from media cache: %w", err)
	}
	return data, nil
}

// WriteMediaCache saves an optimized variant to the cache
func WriteMediaCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create media cache directory: %w", err)
	}

	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to media cache: %w", err)
	}

	log.Printf("✓ Media variant cached: %s", cachePath)
	return nil
}

// OptimizeImage converts an image to a resized JPEG.
// size is "thumb" or "medium"; unknown sizes fall back to medium.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim, quality int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	// Fit preserves aspect ratio and never upscales smaller images
	bounds := img.Bounds()
	resized := img
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		log.Printf("🔄 Resizing image: %dx%d -> max dimension %d", bounds.Dx(), bounds.Dy(), maxDim)
		resized = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	optimized := buf.Bytes()
	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, len(optimized))
	return optimized, nil
}
