package texts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUnknownSnippet(t *testing.T) {
	txt := NewTexts()
	assert.Equal(t, "", txt.Get("no_such_snippet.txt"))
}

func TestWithValsSubstitutes(t *testing.T) {

	txt := NewTexts()
	res := txt.WithVals("alert_post.txt", map[string]string{
		"headline": "Attack detected",
		"handle":   "city_hall",
		"excerpt":  "The <mayor> said & left",
		"category": "ATTACK",
		"urgency":  "5",
		"summary":  "Hostile post about the mayor",
		"posted":   "2026-08-30 10:00:00 UTC",
		"link":     "https://example.com/status/17",
	})

	assert.Contains(t, res, "Attack detected")
	assert.Contains(t, res, "By: @city_hall")
	assert.Contains(t, res, "Urgency: 5/5")
	// Plain-text notification channel: values go in verbatim
	assert.Contains(t, res, "The <mayor> said & left")
	assert.NotContains(t, res, "{{")
}
