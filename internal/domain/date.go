package domain

import "time"

// DateLayout is the textual form every requested date must follow (YYYY-MM-DD-HH-MM-SS)
const DateLayout = "2006-01-02-15-04-05"

// DateKey is a calendar timestamp with second resolution.
// It is the only input the metrics generator is seeded from.
type DateKey struct {
	time.Time
}

// ParseDateKey parses s using DateLayout. The returned error carries the
// calendar failure text (e.g. "month out of range").
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return DateKey{}, err
	}
	return DateKey{Time: t}, nil
}

// NewDateKey builds a DateKey from a time, dropping sub-second precision
func NewDateKey(t time.Time) DateKey {
	return DateKey{Time: t.UTC().Truncate(time.Second)}
}

// String returns the canonical DateLayout form
func (d DateKey) String() string {
	return d.Time.Format(DateLayout)
}

// Seed returns the canonical integer encoding of the key (seconds since the Unix epoch)
func (d DateKey) Seed() uint64 {
	return uint64(d.Time.Unix())
}
