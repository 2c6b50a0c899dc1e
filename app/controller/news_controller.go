package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"gcwab-store/service"
)

// NewsController handles HTTP requests for the news feed
type NewsController struct {
	news service.NewsServiceInterface
}

// NewNewsController creates a new NewsController
func NewNewsController(news service.NewsServiceInterface) *NewsController {
	return &NewsController{news: news}
}

// GetNews handles GET /news?q=
// Proxies the upstream news API with an in-memory TTL cache
func (c *NewsController) GetNews(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetNews: Received %s request to %s", r.Method, r.URL.Path)

	query := r.URL.Query().Get("q")

	response, err := c.news.FetchNews(r.Context(), query)
	if err != nil {
		log.Printf("❌ GetNews: Error fetching news: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch news: %v", err), http.StatusBadGateway)
		return
	}

	log.Printf("✅ GetNews: Returning %d articles", len(response.Articles))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ GetNews: Error encoding response: %v", err)
	}
}
