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

// DuckDuckGo queries the instant-answer API: a direct abstract when one
// exists, otherwise the first related topic that carries text.
type DuckDuckGo struct {
	baseURL string
	client  *http.Client
}

func NewDuckDuckGo(baseURL string) *DuckDuckGo {
	return &DuckDuckGo{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *DuckDuckGo) Name() string { return "duckduckgo" }

type ddgResponse struct {
	Abstract      string `json:"Abstract"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

func (d *DuckDuckGo) Query(ctx context.Context, q string) (string, bool, error) {
	params := url.Values{
		"q":             {q},
		"format":        {"json"},
		"no_html":       {"1"},
		"skip_disambig": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("duckduckgo call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("duckduckgo status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ddgResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", false, fmt.Errorf("parse response: %w", err)
	}

	if apiResp.Abstract != "" {
		return apiResp.Abstract, true, nil
	}
	for _, topic := range apiResp.RelatedTopics {
		if topic.Text != "" {
			return topic.Text, true, nil
		}
	}
	return "", false, nil
}
