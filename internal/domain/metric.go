package domain

// Metric identifies one of the generated series
type Metric string

const (
	MetricCities      Metric = "cities"
	MetricVisitors    Metric = "visitors"
	MetricPagesViewed Metric = "pages_viewed"
	MetricArticles    Metric = "articles"
)

// City is the store city reported for a date
type City string

// Category is an article category
type Category string

// Cities is the closed set of store cities
var Cities = []City{
	"Paris",
	"London",
	"New York",
	"Tokyo",
	"Berlin",
	"Madrid",
	"Rome",
	"Sydney",
	"Toronto",
	"Amsterdam",
}

// Categories is the closed set of article categories
var Categories = []Category{
	"politics",
	"sports",
	"technology",
	"science",
	"entertainment",
	"health",
	"business",
}

// ArticlesKey returns the response key used for a category series, e.g. "sports_articles"
func ArticlesKey(category Category) string {
	return string(category) + "_articles"
}

// Series is one metric aligned with the dates it was computed for
type Series struct {
	Key    string
	Dates  []string
	Values []any
}

// Ints returns the series values as integers; non-numeric values are skipped
func (s Series) Ints() []int {
	out := make([]int, 0, len(s.Values))
	for _, v := range s.Values {
		switch n := v.(type) {
		case int:
			out = append(out, n)
		case float64:
			out = append(out, int(n))
		}
	}
	return out
}
