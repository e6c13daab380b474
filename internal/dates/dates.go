// Package dates validates the date query parameters shared by every metrics route.
package dates

import (
	"regexp"

	"github.com/kurihiro0119/site-metrics/internal/domain"
	apperrors "github.com/kurihiro0119/site-metrics/internal/errors"
)

// InvalidFormatMessage is reported when an entry does not match Pattern
const InvalidFormatMessage = "Invalid date format. Use YYYY-MM-DD-HH-MM-SS format"

// Pattern checks the shape of a date string only; it has no calendar semantics.
var Pattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}$`)

// ProcessDates combines the single and multiple date parameters, single first,
// and checks every entry against pattern. The strings are returned unchanged.
func ProcessDates(single string, multiple []string, pattern *regexp.Regexp, errorMessage string) ([]string, error) {
	if single == "" && len(multiple) == 0 {
		return nil, apperrors.NewMissingParameterError()
	}

	combined := make([]string, 0, len(multiple)+1)
	if single != "" {
		combined = append(combined, single)
	}
	combined = append(combined, multiple...)

	for _, d := range combined {
		if !pattern.MatchString(d) {
			return nil, apperrors.NewInvalidFormatError(errorMessage, nil)
		}
	}

	return combined, nil
}

// ParseAll converts validated date strings into DateKeys. The first calendar
// failure is reported as an invalid format error carrying the parse error text.
func ParseAll(raw []string) ([]domain.DateKey, error) {
	keys := make([]domain.DateKey, 0, len(raw))
	for _, s := range raw {
		d, err := domain.ParseDateKey(s)
		if err != nil {
			return nil, apperrors.NewInvalidFormatError(err.Error(), err)
		}
		keys = append(keys, d)
	}
	return keys, nil
}

// Resolve runs ProcessDates with the service pattern and message, then ParseAll.
// It returns the validated strings alongside their parsed keys.
func Resolve(single string, multiple []string) ([]string, []domain.DateKey, error) {
	raw, err := ProcessDates(single, multiple, Pattern, InvalidFormatMessage)
	if err != nil {
		return nil, nil, err
	}

	keys, err := ParseAll(raw)
	if err != nil {
		return nil, nil, err
	}
	return raw, keys, nil
}
