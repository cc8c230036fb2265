package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUsesConfiguredZone(t *testing.T) {

	tf := NewTimeFormatter(&Config{Timezone: "UTC"})
	when := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30 12:30:00 UTC", tf.Format(when))
}

func TestBadZoneFallsBackToUtc(t *testing.T) {

	tf := NewTimeFormatter(&Config{Timezone: "Neverland/Nowhere"})
	when := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, when, tf.ToLocal(when).UTC())
	assert.Equal(t, "2026-08-30 12:30:00 UTC", tf.Format(when))
}

func TestRelative(t *testing.T) {

	tf := NewTimeFormatter(&Config{})
	now := time.Now().UTC()

	assert.Contains(t, tf.Relative(now.Add(-30*time.Second)), "seconds ago")
	assert.Equal(t, "1 minute ago", tf.Relative(now.Add(-70*time.Second)))
	assert.Equal(t, "5 minutes ago", tf.Relative(now.Add(-5*time.Minute)))
	assert.Equal(t, "2 hours ago", tf.Relative(now.Add(-2*time.Hour)))
	assert.Equal(t, "3 days ago", tf.Relative(now.Add(-73*time.Hour)))
}
