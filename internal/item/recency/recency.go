package recency

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"campus-lost-found/internal/model"
)

const (
	DefaultTimezone       = "America/Sao_Paulo"
	DefaultThresholdHours = 24

	// LabelNow is shown for anything younger than a minute, or dated in the future.
	LabelNow = "agora"

	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day

	calendarLayout = "02/01/2006"
)

// RelativeLabel renders the age of ts as seen at now. Ages of a week or more fall
// back to the calendar date in loc.
func RelativeLabel(ts, now time.Time, loc *time.Location) string {
	elapsed := int64(now.Sub(ts) / time.Second)
	switch {
	case elapsed < minute:
		return LabelNow
	case elapsed < hour:
		return fmt.Sprintf("%dmin atrás", elapsed/minute)
	case elapsed < day:
		return fmt.Sprintf("%dh atrás", elapsed/hour)
	case elapsed < week:
		return fmt.Sprintf("%dd atrás", elapsed/day)
	}
	if loc == nil {
		loc = time.UTC
	}
	return ts.In(loc).Format(calendarLayout)
}

// IsNew reports whether ts is at most thresholdHours old at now.
func IsNew(ts, now time.Time, thresholdHours int) bool {
	if thresholdHours <= 0 {
		thresholdHours = DefaultThresholdHours
	}
	return now.Sub(ts) <= time.Duration(thresholdHours)*time.Hour
}

// Classifier applies the configured timezone and "new" window to the raw
// timestamp strings carried by items.
type Classifier struct {
	location       *time.Location
	thresholdHours int
}

// NewClassifier loads the IANA timezone, e.g. "America/Sao_Paulo". An empty
// timezone or non-positive threshold falls back to the defaults.
func NewClassifier(timezone string, thresholdHours int) (*Classifier, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if thresholdHours <= 0 {
		thresholdHours = DefaultThresholdHours
	}
	return &Classifier{location: loc, thresholdHours: thresholdHours}, nil
}

func (c *Classifier) Location() *time.Location {
	return c.location
}

// Label returns the relative label for a raw timestamp, or "" when it cannot be parsed.
func (c *Classifier) Label(raw string, now time.Time) string {
	ts, err := model.ParseTimestamp(raw)
	if err != nil {
		return ""
	}
	return RelativeLabel(ts, now, c.location)
}

// IsNew is false for unparseable timestamps.
func (c *Classifier) IsNew(raw string, now time.Time) bool {
	ts, err := model.ParseTimestamp(raw)
	if err != nil {
		return false
	}
	return IsNew(ts, now, c.thresholdHours)
}
