// Package generator derives reproducible pseudo-metrics from a date.
//
// Every value is drawn from a PCG source built fresh for the call and seeded
// with the date's Unix seconds plus a hash of the value's stream label. The
// same date therefore always yields the same numbers, regardless of call
// order, goroutine or process.
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/kurihiro0119/site-metrics/internal/domain"
)

const (
	DefaultMinVisitors = 50
	DefaultMaxVisitors = 500

	// page views per visitor, in hundredths
	minPagesMultiplier = 150
	maxPagesMultiplier = 400

	maxArticles = 120
)

const (
	streamVisitors = "visitors"
	streamPages    = "pages_viewed"
	streamCity     = "city"
	streamArticles = "articles:"
)

// Config holds the visitor bounds
type Config struct {
	MinVisitors int
	MaxVisitors int
}

// Generator computes metrics for a date. It holds no mutable state and is safe
// for concurrent use.
type Generator struct {
	minVisitors int
	maxVisitors int
	cities      []domain.City
	categories  []domain.Category
}

// New creates a generator over the fixed city and category sets
func New(cfg Config) (*Generator, error) {
	if cfg.MinVisitors < 0 {
		return nil, fmt.Errorf("min visitors must not be negative, got %d", cfg.MinVisitors)
	}
	if cfg.MinVisitors > cfg.MaxVisitors {
		return nil, fmt.Errorf("min visitors (%d) exceeds max visitors (%d)", cfg.MinVisitors, cfg.MaxVisitors)
	}

	return &Generator{
		minVisitors: cfg.MinVisitors,
		maxVisitors: cfg.MaxVisitors,
		cities:      append([]domain.City(nil), domain.Cities...),
		categories:  append([]domain.Category(nil), domain.Categories...),
	}, nil
}

// Visitors returns the visitor count for d, within [MinVisitors, MaxVisitors]
func (g *Generator) Visitors(d domain.DateKey) int {
	r := source(d, streamVisitors)
	return g.minVisitors + r.IntN(g.maxVisitors-g.minVisitors+1)
}

// PagesViewed returns the page views for d. It scales Visitors(d) by a
// multiplier drawn from d, so the bounds only reach it through the visitor count.
func (g *Generator) PagesViewed(d domain.DateKey) int {
	return pagesFor(d, g.Visitors(d))
}

func pagesFor(d domain.DateKey, visitors int) int {
	r := source(d, streamPages)
	multiplier := minPagesMultiplier + r.IntN(maxPagesMultiplier-minPagesMultiplier+1)
	return visitors * multiplier / 100
}

// City returns the store city for d
func (g *Generator) City(d domain.DateKey) domain.City {
	r := source(d, streamCity)
	return g.cities[r.IntN(len(g.cities))]
}

// ArticlesByCategory returns an article count for every category
func (g *Generator) ArticlesByCategory(d domain.DateKey) map[domain.Category]int {
	counts := make(map[domain.Category]int, len(g.categories))
	for _, c := range g.categories {
		counts[c] = articlesFor(d, c)
	}
	return counts
}

// Articles returns the article count of a single category.
// ok is false for a category outside Categories.
func (g *Generator) Articles(d domain.DateKey, category domain.Category) (count int, ok bool) {
	if !g.HasCategory(category) {
		return 0, false
	}
	return articlesFor(d, category), true
}

func articlesFor(d domain.DateKey, category domain.Category) int {
	r := source(d, streamArticles+string(category))
	return r.IntN(maxArticles + 1)
}

// Categories returns a copy of the category set in its fixed order
func (g *Generator) Categories() []domain.Category {
	return append([]domain.Category(nil), g.categories...)
}

// HasCategory reports whether c is a known category
func (g *Generator) HasCategory(c domain.Category) bool {
	for _, known := range g.categories {
		if known == c {
			return true
		}
	}
	return false
}

// Cities returns a copy of the city set in its fixed order
func (g *Generator) Cities() []domain.City {
	return append([]domain.City(nil), g.cities...)
}

// Bounds returns the configured visitor bounds
func (g *Generator) Bounds() (minVisitors, maxVisitors int) {
	return g.minVisitors, g.maxVisitors
}

func source(d domain.DateKey, stream string) *rand.Rand {
	return rand.New(rand.NewPCG(d.Seed(), xxhash.Sum64String(stream)))
}
