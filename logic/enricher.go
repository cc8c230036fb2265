package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"post_sentinel/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_enricher.go -package mocks post_sentinel/logic IEnricher

const (
	CategoryAttack    = "ATTACK"
	CategoryGrievance = "GRIEVANCE"
	CategorySupport   = "SUPPORT"
	CategoryNeutral   = "NEUTRAL"
)

const (
	enrichAttempts     = 2
	fallbackSummaryLen = 160
)

// Enrichment carries the AI summary and classification for one post. Degraded
// marks the fallback produced when the AI service could not be reached.
type Enrichment struct {
	Summary   string
	Category  string
	Urgency   int // 1..5
	Sentiment float64
	Degraded  bool
}

type IEnricher interface {
	// Enrich never fails: on timeout or malformed response it retries once,
	// then falls back to a truncated excerpt classified {NEUTRAL, urgency 1}.
	Enrich(ctx context.Context, handle, text string) *Enrichment
}

type enricher struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
	client  *http.Client
}

func NewEnricher(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) IEnricher {
	return &enricher{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		client:  &http.Client{Timeout: time.Duration(cfg.EnrichTimeoutSec) * time.Second},
	}
}

func (e *enricher) Enrich(ctx context.Context, handle, text string) *Enrichment {

	obs := e.metrics.StartEnrichment()
	var lastErr error
	for attempt := 0; attempt < enrichAttempts; attempt++ {
		res, err := e.callModel(ctx, handle, text)
		if err == nil {
			obs.Finish()
			return res
		}
		lastErr = err
	}
	e.logger.Warnf("Enrichment degraded for post by @%s: %v", handle, lastErr)
	e.metrics.EnrichmentFallback()
	obs.Finish()
	return FallbackEnrichment(text)
}

// FallbackEnrichment is the degraded result used when the AI service is
// unreachable or returns garbage; the pipeline must never stall on it.
func FallbackEnrichment(text string) *Enrichment {
	return &Enrichment{
		Summary:   shared.TruncateWithEllipsis(text, fallbackSummaryLen),
		Category:  CategoryNeutral,
		Urgency:   1,
		Sentiment: 0,
		Degraded:  true,
	}
}

func (e *enricher) callModel(ctx context.Context, handle, text string) (*Enrichment, error) {

	ctx, cancel := context.WithTimeout(ctx, time.Duration(e.cfg.EnrichTimeoutSec)*time.Second)
	defer cancel()

	body := map[string]any{
		"model": e.cfg.AiModel,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a risk and sentiment analyst providing raw JSON output."},
			{"role": "user", "content": buildPrompt(handle, text)},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0.2,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", e.cfg.AiBaseUrl+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.cfg.Secrets.AiApiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("AI API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("AI API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("response carried no choices")
	}

	return parseEnrichment(completion.Choices[0].Message.Content)
}

func buildPrompt(handle, text string) string {
	return fmt.Sprintf(`Analyze this social media post from @%s and classify it.

Post:
%s

Classification guidelines:
- ATTACK: personal insults, mockery, or serious allegations
- GRIEVANCE: a specific citizen issue or complaint
- SUPPORT: praise or defense
- NEUTRAL: general news or mentions without strong emotion

Urgency scoring (1-5): 5 is an emergency or crisis, 1 is minimal.
Sentiment scoring (-1.0 to 1.0): -1.0 is highly negative, 1.0 is highly positive.

Respond ONLY with valid JSON, no conversation or markdown:
{"summary": "one sentence", "category": "ATTACK|GRIEVANCE|SUPPORT|NEUTRAL", "urgency_score": 1-5, "sentiment_score": -1.0 to 1.0}`,
		handle, text)
}

// parseEnrichment is lenient about markdown fences but strict about the payload.
func parseEnrichment(content string) (*Enrichment, error) {

	content = stripCodeFences(content)

	var payload struct {
		Summary   string  `json:"summary"`
		Category  string  `json:"category"`
		Urgency   int     `json:"urgency_score"`
		Sentiment float64 `json:"sentiment_score"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("malformed model response: %w", err)
	}
	if payload.Summary == "" {
		return nil, fmt.Errorf("model response carried no summary")
	}

	category := strings.ToUpper(strings.TrimSpace(payload.Category))
	switch category {
	case CategoryAttack, CategoryGrievance, CategorySupport, CategoryNeutral:
	default:
		category = CategoryNeutral
	}

	urgency := payload.Urgency
	if urgency < 1 {
		urgency = 1
	}
	if urgency > 5 {
		urgency = 5
	}

	return &Enrichment{
		Summary:   payload.Summary,
		Category:  category,
		Urgency:   urgency,
		Sentiment: payload.Sentiment,
	}, nil
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	endIdx := len(lines) - 1
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			endIdx = i
			break
		}
	}
	return strings.Join(lines[1:endIdx], "\n")
}
