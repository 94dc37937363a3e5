package models

import "time"

// NewsItem is a headline shown on the landing page.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      string    `json:"source"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
}

// FeaturedCoin is a static ticker card shown on the landing page when the
// live snapshot is unavailable.
type FeaturedCoin struct {
	Name   string  `yaml:"name" json:"name"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	Price  float64 `yaml:"price" json:"price"`
	Change float64 `yaml:"change" json:"change"`
}
