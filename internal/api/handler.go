package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kurihiro0119/site-metrics/internal/dates"
	"github.com/kurihiro0119/site-metrics/internal/domain"
	apperrors "github.com/kurihiro0119/site-metrics/internal/errors"
	"github.com/kurihiro0119/site-metrics/internal/telemetry"
)

// Example dates used when a request names neither date nor dates
var (
	DefaultDate  = "2020-01-01-01-01-01"
	DefaultDates = []string{
		"2020-01-01-01-01-01",
		"2020-01-02-01-01-01",
		"2020-01-03-01-01-01",
		"2020-01-04-01-01-01",
	}
)

// MetricsSource computes the per-date metrics served by the API
type MetricsSource interface {
	Visitors(d domain.DateKey) int
	PagesViewed(d domain.DateKey) int
	City(d domain.DateKey) domain.City
	Articles(d domain.DateKey, category domain.Category) (int, bool)
	Categories() []domain.Category
	HasCategory(c domain.Category) bool
}

// Handler handles API requests
type Handler struct {
	source          MetricsSource
	metrics         *telemetry.Metrics
	exampleDefaults bool
}

// NewHandler creates a new API handler
func NewHandler(source MetricsSource, metrics *telemetry.Metrics, exampleDefaults bool) *Handler {
	return &Handler{
		source:          source,
		metrics:         metrics,
		exampleDefaults: exampleDefaults,
	}
}

// GetCities returns the store city for each date
// GET /cities
func (h *Handler) GetCities(c *gin.Context) {
	h.serveSeries(c, domain.MetricCities, string(domain.MetricCities), func(d domain.DateKey) any {
		return h.source.City(d)
	})
}

// GetPagesViewed returns page views for each date
// GET /pages_viewed
func (h *Handler) GetPagesViewed(c *gin.Context) {
	h.serveSeries(c, domain.MetricPagesViewed, string(domain.MetricPagesViewed), func(d domain.DateKey) any {
		return h.source.PagesViewed(d)
	})
}

// GetVisitors returns the visitor count for each date
// GET /visitors
func (h *Handler) GetVisitors(c *gin.Context) {
	h.serveSeries(c, domain.MetricVisitors, string(domain.MetricVisitors), func(d domain.DateKey) any {
		return h.source.Visitors(d)
	})
}

// GetArticles returns the article count of one category for each date
// GET /articles/:category
func (h *Handler) GetArticles(c *gin.Context) {
	category := domain.Category(c.Param("category"))
	if !h.source.HasCategory(category) {
		h.respondError(c, apperrors.NewInvalidCategoryError(string(category), h.categoryNames()))
		return
	}

	h.serveSeries(c, domain.MetricArticles, domain.ArticlesKey(category), func(d domain.DateKey) any {
		n, _ := h.source.Articles(d, category)
		return n
	})
}

// GetCategories lists the article categories
// GET /categories
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.categoryNames(),
	})
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// serveSeries validates the date parameters, then computes one value per date.
// Nothing is computed unless every date is valid.
func (h *Handler) serveSeries(c *gin.Context, metric domain.Metric, key string, compute func(domain.DateKey) any) {
	single, multiple := h.dateParams(c)

	raw, keys, err := dates.Resolve(single, multiple)
	if err != nil {
		h.respondError(c, err)
		return
	}

	values := make([]any, len(keys))
	for i, d := range keys {
		values[i] = compute(d)
	}
	h.metrics.ObserveGenerated(string(metric), len(keys))

	c.JSON(http.StatusOK, gin.H{
		key:     values,
		"dates": raw,
	})
}

// dateParams reads the date and dates query parameters, falling back to the
// example dates when neither key is present at all
func (h *Handler) dateParams(c *gin.Context) (string, []string) {
	single, hasDate := c.GetQuery("date")
	multiple, hasDates := c.GetQueryArray("dates")

	if h.exampleDefaults && !hasDate && !hasDates {
		return DefaultDate, append([]string(nil), DefaultDates...)
	}
	return single, multiple
}

func (h *Handler) categoryNames() []string {
	categories := h.source.Categories()
	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = string(category)
	}
	return names
}

// respondError sends an error response
func (h *Handler) respondError(c *gin.Context, err error) {
	h.metrics.ObserveRejected(string(apperrors.CodeOf(err)))
	_ = c.Error(err)

	message := err.Error()
	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message
	}

	c.JSON(apperrors.StatusCode(err), gin.H{
		"error": message,
	})
}
