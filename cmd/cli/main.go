package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kurihiro0119/site-metrics/internal/config"
	"github.com/kurihiro0119/site-metrics/internal/dates"
	"github.com/kurihiro0119/site-metrics/internal/domain"
	"github.com/kurihiro0119/site-metrics/internal/generator"
	"github.com/kurihiro0119/site-metrics/pkg/client"
)

var (
	singleDate string
	dateList   []string
	outputJSON bool
	showChart  bool
	localMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "site-metrics",
	Short: "Synthetic site metrics tool",
	Long: `A CLI for querying synthetic site metrics by date.

Values are derived deterministically from each date, so the same date always
reports the same visitors, page views, city and article counts. Dates use the
YYYY-MM-DD-HH-MM-SS format. By default the API server is queried; --local
computes the values in-process instead.`,
	SilenceUsage: true,
}

var visitorsCmd = &cobra.Command{
	Use:   "visitors",
	Short: "Show visitor counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeries(domain.MetricVisitors, "")
	},
}

var pagesViewedCmd = &cobra.Command{
	Use:   "pages-viewed",
	Short: "Show page views",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeries(domain.MetricPagesViewed, "")
	},
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Show store cities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeries(domain.MetricCities, "")
	},
}

var articlesCmd = &cobra.Command{
	Use:   "articles [category]",
	Short: "Show article counts for a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeries(domain.MetricArticles, domain.Category(args[0]))
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List article categories",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&singleDate, "date", "", "single date (YYYY-MM-DD-HH-MM-SS)")
	rootCmd.PersistentFlags().StringSliceVar(&dateList, "dates", nil, "comma-separated dates (YYYY-MM-DD-HH-MM-SS)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&showChart, "chart", false, "plot numeric series as an ASCII chart")
	rootCmd.PersistentFlags().BoolVar(&localMode, "local", false, "compute metrics locally instead of calling the API")

	rootCmd.AddCommand(visitorsCmd)
	rootCmd.AddCommand(pagesViewedCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(articlesCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSeries(metric domain.Metric, category domain.Category) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var series *domain.Series
	if localMode {
		gen, err := generator.New(generator.Config{MinVisitors: cfg.MinVisitors, MaxVisitors: cfg.MaxVisitors})
		if err != nil {
			return fmt.Errorf("failed to initialize generator: %w", err)
		}
		series, err = localSeries(gen, metric, category, singleDate, dateList)
		if err != nil {
			return err
		}
	} else {
		c := client.NewClient(cfg.APIEndpoint, cfg.APIKeyName, cfg.APIKey)
		series, err = remoteSeries(c, metric, category, singleDate, dateList)
		if err != nil {
			return fmt.Errorf("failed to get metrics: %w", err)
		}
	}

	return render(os.Stdout, series, outputJSON, showChart)
}

func runCategories(cmd *cobra.Command, args []string) error {
	var names []string
	if localMode {
		for _, c := range domain.Categories {
			names = append(names, string(c))
		}
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		names, err = client.NewClient(cfg.APIEndpoint, cfg.APIKeyName, cfg.APIKey).GetCategories()
		if err != nil {
			return fmt.Errorf("failed to get categories: %w", err)
		}
	}

	return renderList(os.Stdout, "Category", names, outputJSON)
}

// localSeries computes a series in-process, applying the same validation as the API
func localSeries(gen *generator.Generator, metric domain.Metric, category domain.Category, date string, list []string) (*domain.Series, error) {
	key := string(metric)
	if metric == domain.MetricArticles {
		if !gen.HasCategory(category) {
			return nil, fmt.Errorf("invalid category '%s', available categories: %v", category, gen.Categories())
		}
		key = domain.ArticlesKey(category)
	}

	raw, keys, err := dates.Resolve(date, list)
	if err != nil {
		return nil, err
	}

	series := &domain.Series{Key: key, Dates: raw, Values: make([]any, len(keys))}
	for i, d := range keys {
		switch metric {
		case domain.MetricVisitors:
			series.Values[i] = gen.Visitors(d)
		case domain.MetricPagesViewed:
			series.Values[i] = gen.PagesViewed(d)
		case domain.MetricCities:
			series.Values[i] = string(gen.City(d))
		case domain.MetricArticles:
			n, _ := gen.Articles(d, category)
			series.Values[i] = n
		}
	}
	return series, nil
}

func remoteSeries(c *client.Client, metric domain.Metric, category domain.Category, date string, list []string) (*domain.Series, error) {
	switch metric {
	case domain.MetricVisitors:
		return c.GetVisitors(date, list)
	case domain.MetricPagesViewed:
		return c.GetPagesViewed(date, list)
	case domain.MetricCities:
		return c.GetCities(date, list)
	case domain.MetricArticles:
		return c.GetArticles(string(category), date, list)
	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
}
