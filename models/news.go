package models

// NewsSource identifies the outlet an article came from
type NewsSource struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// NewsArticle mirrors the NewsAPI article payload
type NewsArticle struct {
	Source      NewsSource `json:"source"`
	Author      string     `json:"author,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	URLToImage  string     `json:"urlToImage,omitempty"`
	PublishedAt string     `json:"publishedAt"`
}

// NewsResponse mirrors the NewsAPI envelope returned to the storefront
// Example response:
// {
//   "status": "ok",
//   "totalResults": 8,
//   "articles": [{"source": {"name": "..."}, "title": "...", "url": "https://...", "publishedAt": "2024-01-15T10:30:00Z"}]
// }
type NewsResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}
