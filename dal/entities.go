package dal

import (
	"time"
)

type Account struct {
	Id          int
	Handle      string // lower-cased, unique; comparison is case-insensitive
	DisplayName string
	IsActive    bool
	LastChecked time.Time // watermark: start time of the last completed poll cycle
	CreatedAt   time.Time
}

type Post struct {
	Id        int
	PostId    string // platform-assigned status id; unique
	Handle    string // owning account; empty for keyword-search-only rows
	Text      string
	Link      string
	PostedAt  time.Time // canonical UTC
	ScrapedAt time.Time
	// Enrichment fields; zero values until the enrichment pass lands
	Enriched  bool
	Summary   string
	Category  string
	Urgency   int
	Sentiment float64
	AlertSent bool
}
