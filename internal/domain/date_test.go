package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey(t *testing.T) {
	d, err := ParseDateKey("2020-01-02-03-04-05")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), d.Time)
	assert.Equal(t, "2020-01-02-03-04-05", d.String())
	assert.Equal(t, uint64(1577934245), d.Seed())
}

func TestParseDateKey_CalendarInvalid(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{"2020-13-01-01-01-01", "month out of range"},
		{"2021-02-30-01-01-01", "day out of range"},
		{"2020-01-01-25-01-01", "hour out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDateKey(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDateKey_TruncatesToSeconds(t *testing.T) {
	ts := time.Date(2021, 6, 1, 12, 0, 0, 999, time.UTC)
	assert.Equal(t, "2021-06-01-12-00-00", NewDateKey(ts).String())
}

func TestArticlesKey(t *testing.T) {
	assert.Equal(t, "sports_articles", ArticlesKey("sports"))
}
