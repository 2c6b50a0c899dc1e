package service

import (
	"context"

	"gcwab-store/models"
)

// NewsServiceInterface defines the contract for news aggregation
type NewsServiceInterface interface {
	FetchNews(ctx context.Context, query string) (*models.NewsResponse, error)
}
