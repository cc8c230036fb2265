package dto

import "time"

type Account struct {
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	LastChecked time.Time `json:"last_checked"`
	CreatedAt   time.Time `json:"created_at"`
}

type AddAccount struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
}

type Post struct {
	PostId    string  `json:"post_id"`
	Handle    string  `json:"handle"`
	Text      string  `json:"text"`
	Link      string  `json:"link"`
	PostedAt  string  `json:"posted_at"`
	PostedRel string  `json:"posted_rel"`
	Enriched  bool    `json:"enriched"`
	Summary   string  `json:"summary,omitempty"`
	Category  string  `json:"category,omitempty"`
	Urgency   int     `json:"urgency,omitempty"`
	Sentiment float64 `json:"sentiment,omitempty"`
	AlertSent bool    `json:"alert_sent"`
}

type SearchRequest struct {
	Query    string `json:"query"`
	MaxCount int    `json:"max_count"`
}

type SearchResult struct {
	PostId    string  `json:"post_id"`
	Handle    string  `json:"handle"`
	Text      string  `json:"text"`
	Link      string  `json:"link"`
	PostedAt  string  `json:"posted_at"`
	Summary   string  `json:"summary"`
	Category  string  `json:"category"`
	Urgency   int     `json:"urgency"`
	Sentiment float64 `json:"sentiment"`
	Degraded  bool    `json:"degraded"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

type AccountHealth struct {
	Handle     string `json:"handle"`
	LastPolled string `json:"last_polled"`
	Outcome    string `json:"outcome"`
}

type Health struct {
	Status         string          `json:"status"`
	Running        bool            `json:"running"`
	LastCycleStart string          `json:"last_cycle_start"`
	LastCycleEnd   string          `json:"last_cycle_end"`
	LastCycleOk    bool            `json:"last_cycle_ok"`
	Accounts       []AccountHealth `json:"accounts"`
}
