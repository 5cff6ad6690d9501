package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const wikipediaAttribution = "According to Wikipedia, "

// Wikipedia searches the MediaWiki action API for the best-matching page
// title, then fetches a two-sentence plain-text summary of it.
type Wikipedia struct {
	apiURL string
	client *http.Client
}

func NewWikipedia(apiURL string) *Wikipedia {
	return &Wikipedia{
		apiURL: apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Wikipedia) Name() string { return "wikipedia" }

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiExtractResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

func (w *Wikipedia) Query(ctx context.Context, q string) (string, bool, error) {
	var search wikiSearchResponse
	err := w.get(ctx, url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {q},
		"srlimit":  {"1"},
		"format":   {"json"},
	}, &search)
	if err != nil {
		return "", false, fmt.Errorf("wikipedia search: %w", err)
	}
	if len(search.Query.Search) == 0 {
		return "", false, nil
	}
	title := search.Query.Search[0].Title

	var extract wikiExtractResponse
	err = w.get(ctx, url.Values{
		"action":      {"query"},
		"prop":        {"extracts"},
		"exsentences": {"2"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"titles":      {title},
		"format":      {"json"},
	}, &extract)
	if err != nil {
		return "", false, fmt.Errorf("wikipedia summary: %w", err)
	}

	for _, page := range extract.Query.Pages {
		if page.Extract != "" {
			return wikipediaAttribution + page.Extract, true, nil
		}
	}
	return "", false, nil
}

func (w *Wikipedia) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
