package generator

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurihiro0119/site-metrics/internal/domain"
)

func newDefault(t *testing.T) *Generator {
	t.Helper()
	g, err := New(Config{MinVisitors: DefaultMinVisitors, MaxVisitors: DefaultMaxVisitors})
	require.NoError(t, err)
	return g
}

// sampleDates spans a few years at irregular offsets
func sampleDates() []domain.DateKey {
	start := time.Date(2019, 12, 31, 23, 59, 59, 0, time.UTC)
	keys := make([]domain.DateKey, 0, 200)
	for i := 0; i < 200; i++ {
		keys = append(keys, domain.NewDateKey(start.Add(time.Duration(i*i*3607)*time.Second)))
	}
	return keys
}

func TestNew_RejectsInvalidBounds(t *testing.T) {
	_, err := New(Config{MinVisitors: 10, MaxVisitors: 5})
	assert.Error(t, err)

	_, err = New(Config{MinVisitors: -1, MaxVisitors: 5})
	assert.Error(t, err)

	g, err := New(Config{MinVisitors: 7, MaxVisitors: 7})
	require.NoError(t, err)
	for _, d := range sampleDates() {
		assert.Equal(t, 7, g.Visitors(d))
	}
}

func TestVisitors_StableAndBounded(t *testing.T) {
	g := newDefault(t)

	for _, d := range sampleDates() {
		first := g.Visitors(d)
		assert.GreaterOrEqual(t, first, DefaultMinVisitors)
		assert.LessOrEqual(t, first, DefaultMaxVisitors)
		assert.Equal(t, first, g.Visitors(d), "visitors for %s changed between calls", d)
	}
}

func TestVisitors_IndependentGeneratorsAgree(t *testing.T) {
	a := newDefault(t)
	b := newDefault(t)

	for _, d := range sampleDates() {
		assert.Equal(t, a.Visitors(d), b.Visitors(d))
		assert.Equal(t, a.PagesViewed(d), b.PagesViewed(d))
		assert.Equal(t, a.City(d), b.City(d))
		assert.Equal(t, a.ArticlesByCategory(d), b.ArticlesByCategory(d))
	}
}

func TestVisitors_VaryAcrossDates(t *testing.T) {
	g := newDefault(t)

	seen := make(map[int]struct{})
	for _, d := range sampleDates() {
		seen[g.Visitors(d)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestPagesViewed_DerivedFromVisitors(t *testing.T) {
	narrow, err := New(Config{MinVisitors: 50, MaxVisitors: 500})
	require.NoError(t, err)
	wide, err := New(Config{MinVisitors: 1000, MaxVisitors: 5000})
	require.NoError(t, err)

	for _, d := range sampleDates() {
		for _, g := range []*Generator{narrow, wide} {
			v := g.Visitors(d)
			pages := g.PagesViewed(d)
			assert.Equal(t, pagesFor(d, v), pages)
			assert.GreaterOrEqual(t, pages, v*minPagesMultiplier/100)
			assert.LessOrEqual(t, pages, v*maxPagesMultiplier/100)
			assert.Equal(t, pages, g.PagesViewed(d))
		}
	}
}

func TestPagesViewed_FixedVisitorsGiveFixedPages(t *testing.T) {
	a, err := New(Config{MinVisitors: 300, MaxVisitors: 300})
	require.NoError(t, err)
	b, err := New(Config{MinVisitors: 300, MaxVisitors: 300})
	require.NoError(t, err)

	for _, d := range sampleDates() {
		assert.Equal(t, a.PagesViewed(d), b.PagesViewed(d))
	}
}

func TestCity_MemberOfSet(t *testing.T) {
	g := newDefault(t)

	for _, d := range sampleDates() {
		city := g.City(d)
		assert.Contains(t, domain.Cities, city)
		assert.Equal(t, city, g.City(d))
	}
}

func TestArticlesByCategory_CoversEveryCategory(t *testing.T) {
	g := newDefault(t)

	for _, d := range sampleDates() {
		counts := g.ArticlesByCategory(d)
		require.Len(t, counts, len(g.Categories()))
		for _, c := range g.Categories() {
			n, ok := counts[c]
			require.True(t, ok, "missing category %s", c)
			assert.GreaterOrEqual(t, n, 0)
			assert.LessOrEqual(t, n, maxArticles)

			single, ok := g.Articles(d, c)
			require.True(t, ok)
			assert.Equal(t, n, single)
		}
	}
}

func TestArticles_UnknownCategory(t *testing.T) {
	g := newDefault(t)
	d := domain.NewDateKey(time.Date(2020, 1, 1, 1, 1, 1, 0, time.UTC))

	_, ok := g.Articles(d, "cooking")
	assert.False(t, ok)
	assert.False(t, g.HasCategory("cooking"))
	assert.True(t, g.HasCategory("sports"))
}

func TestCategories_ReturnsCopy(t *testing.T) {
	g := newDefault(t)

	cats := g.Categories()
	cats[0] = "mutated"
	assert.Equal(t, domain.Categories[0], g.Categories()[0])

	cities := g.Cities()
	cities[0] = "Nowhere"
	assert.Equal(t, domain.Cities[0], g.Cities()[0])
}

func TestGenerator_ConcurrentCallsAgree(t *testing.T) {
	g := newDefault(t)
	d := domain.NewDateKey(time.Date(2020, 1, 1, 1, 1, 1, 0, time.UTC))
	want := g.Visitors(d)

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// interleave other draws to prove call order is irrelevant
			_ = g.City(d)
			_ = g.ArticlesByCategory(d)
			results[i] = g.Visitors(d)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestBounds(t *testing.T) {
	g := newDefault(t)
	lo, hi := g.Bounds()
	assert.Equal(t, DefaultMinVisitors, lo)
	assert.Equal(t, DefaultMaxVisitors, hi)
}
