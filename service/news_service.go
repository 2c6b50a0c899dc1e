package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"gcwab-store/models"
)

const (
	defaultNewsQuery = "cars,fashion"
	newsCountry      = "ng"
	maxArticles      = 8
)

// NewsService aggregates third-party headlines for the storefront news strip.
// Nigeria-scoped headlines are tried first; when the region has no coverage
// for the query, it falls back to worldwide results capped at the same size.
// Responses are cached briefly to stay inside the API quota.
type NewsService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]cachedNews
}

type cachedNews struct {
	response  *models.NewsResponse
	fetchedAt time.Time
}

// NewNewsService creates a new NewsService
func NewNewsService(apiKey string) *NewsService {
	return &NewsService{
		apiKey:  apiKey,
		baseURL: "https://newsapi.org",
		client:  &http.Client{Timeout: 10 * time.Second},
		ttl:     5 * time.Minute,
		cache:   make(map[string]cachedNews),
	}
}

// Ensure NewsService implements NewsServiceInterface
var _ NewsServiceInterface = (*NewsService)(nil)

// FetchNews returns up to 8 articles for the query
func (s *NewsService) FetchNews(ctx context.Context, query string) (*models.NewsResponse, error) {
	if query == "" {
		query = defaultNewsQuery
	}

	if cached := s.fromCache(query); cached != nil {
		return cached, nil
	}

	// Try Nigeria news first with a strict page size limit
	primaryURL := fmt.Sprintf("%s/v2/top-headlines?country=%s&q=%s&pageSize=%d&apiKey=%s",
		s.baseURL, newsCountry, url.QueryEscape(query), maxArticles, s.apiKey)

	response, err := s.get(ctx, primaryURL)
	if err != nil {
		log.Printf("⚠️ FetchNews: Headlines request failed, trying worldwide: %v", err)
		response = nil
	}

	// Fall back to worldwide if Nigeria has no articles
	if response == nil || len(response.Articles) == 0 {
		fallbackURL := fmt.Sprintf("%s/v2/everything?q=%s&sortBy=publishedAt&language=en&pageSize=12&apiKey=%s",
			s.baseURL, url.QueryEscape(query), s.apiKey)

		response, err = s.get(ctx, fallbackURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch news: %w", err)
		}
	}

	// Force limit after the fallback fetch
	if len(response.Articles) > maxArticles {
		response.Articles = response.Articles[:maxArticles]
	}
	response.TotalResults = len(response.Articles)

	s.toCache(query, response)
	return response, nil
}

func (s *NewsService) get(ctx context.Context, fullURL string) (*models.NewsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news endpoint returned status %d", resp.StatusCode)
	}

	var response models.NewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	return &response, nil
}

func (s *NewsService) fromCache(query string) *models.NewsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[query]
	if !ok || time.Since(entry.fetchedAt) > s.ttl {
		return nil
	}
	return entry.response
}

func (s *NewsService) toCache(query string, response *models.NewsResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[query] = cachedNews{response: response, fetchedAt: time.Now()}
}
