package ats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the external resume-scoring API. Zero-value config (empty
// URL or key) means no upstream is available and callers should fall back
// to the mock advisor.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiURL) == "" {
		return nil, fmt.Errorf("ATS_API_URL is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ATS_API_KEY is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type scoreRequest struct {
	Resume string `json:"resume"`
}

type scoreResponse struct {
	Score       int      `json:"score"`
	Feedback    []string `json:"feedback"`
	Suggestions []string `json:"suggestions"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Check submits the flattened resume text for scoring.
func (c *Client) Check(ctx context.Context, resumeText string) (Result, error) {
	payload, err := json.Marshal(scoreRequest{Resume: resumeText})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return Result{}, fmt.Errorf("ats request timeout: %w", err)
		}
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("ats upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed scoreResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{}, fmt.Errorf("ats response parse: %w", err)
	}
	if parsed.Error != nil {
		return Result{}, fmt.Errorf("ats upstream error: %s", parsed.Error.Message)
	}
	if parsed.Score < 0 || parsed.Score > 100 {
		return Result{}, fmt.Errorf("ats upstream score out of range: %d", parsed.Score)
	}

	return Result{
		Score:       parsed.Score,
		Feedback:    parsed.Feedback,
		Suggestions: parsed.Suggestions,
		Source:      SourceAPI,
	}, nil
}
