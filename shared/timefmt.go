package shared

import (
	"fmt"
	"time"
)

const displayTimeFormat = "2006-01-02 15:04:05 MST"

// ITimeFormatter renders stored UTC timestamps in the deployment's canonical zone.
type ITimeFormatter interface {
	ToLocal(t time.Time) time.Time
	Format(t time.Time) string
	Relative(t time.Time) string
}

type timeFormatter struct {
	loc *time.Location
}

func NewTimeFormatter(cfg *Config) ITimeFormatter {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &timeFormatter{loc: loc}
}

func (tf *timeFormatter) ToLocal(t time.Time) time.Time {
	return t.In(tf.loc)
}

func (tf *timeFormatter) Format(t time.Time) string {
	return t.In(tf.loc).Format(displayTimeFormat)
}

func (tf *timeFormatter) Relative(t time.Time) string {
	diff := time.Now().UTC().Sub(t.UTC())
	if diff < 0 {
		diff = 0
	}
	seconds := int(diff.Seconds())
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d seconds ago", seconds)
	case seconds < 3600:
		return plural(seconds/60, "minute")
	case seconds < 86400:
		return plural(seconds/3600, "hour")
	default:
		return plural(seconds/86400, "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
