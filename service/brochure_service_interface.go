package service

import "context"

// BrochureServiceInterface defines the contract for brochure generation
type BrochureServiceInterface interface {
	RenderBrochureHTML(ctx context.Context) (string, error)
	GeneratePDF(ctx context.Context) ([]byte, error)
}
