package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kurihiro0119/site-metrics/internal/domain"
)

// Client is the API client for site-metrics
type Client struct {
	baseURL    string
	keyHeader  string
	apiKey     string
	httpClient *http.Client
}

// APIError is a non-200 response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Message)
}

// NewClient creates a new API client that sends apiKey in the keyHeader header
func NewClient(baseURL, keyHeader, apiKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		keyHeader: keyHeader,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetVisitors retrieves visitor counts
func (c *Client) GetVisitors(date string, dates []string) (*domain.Series, error) {
	return c.getSeries("/visitors", string(domain.MetricVisitors), date, dates)
}

// GetPagesViewed retrieves page views
func (c *Client) GetPagesViewed(date string, dates []string) (*domain.Series, error) {
	return c.getSeries("/pages_viewed", string(domain.MetricPagesViewed), date, dates)
}

// GetCities retrieves store cities
func (c *Client) GetCities(date string, dates []string) (*domain.Series, error) {
	return c.getSeries("/cities", string(domain.MetricCities), date, dates)
}

// GetArticles retrieves article counts for one category
func (c *Client) GetArticles(category, date string, dates []string) (*domain.Series, error) {
	path := "/articles/" + url.PathEscape(category)
	return c.getSeries(path, domain.ArticlesKey(domain.Category(category)), date, dates)
}

// GetCategories lists the article categories
func (c *Client) GetCategories() ([]string, error) {
	var response struct {
		Categories []string `json:"categories"`
	}
	if err := c.get("/categories", nil, &response); err != nil {
		return nil, err
	}
	return response.Categories, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", nil, &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) getSeries(path, key, date string, dates []string) (*domain.Series, error) {
	var response map[string]json.RawMessage
	if err := c.get(path, buildDateParams(date, dates), &response); err != nil {
		return nil, err
	}

	series := &domain.Series{Key: key}
	if err := json.Unmarshal(response["dates"], &series.Dates); err != nil {
		return nil, fmt.Errorf("decode dates: %w", err)
	}
	raw, ok := response[key]
	if !ok {
		return nil, fmt.Errorf("response has no %q series", key)
	}
	if err := json.Unmarshal(raw, &series.Values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return series, nil
}

func buildDateParams(date string, dates []string) url.Values {
	params := url.Values{}
	if date != "" {
		params.Set("date", date)
	}
	for _, d := range dates {
		params.Add("dates", d)
	}
	return params
}

func (c *Client) get(path string, params url.Values, result interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set(c.keyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var payload struct {
			Error string `json:"error"`
		}
		message := string(body)
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			message = payload.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
