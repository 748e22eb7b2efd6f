package adsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/buffapp/adsync/pkg/config"
)

// Client talks to the Amazon Advertising API: OAuth token exchange, profile
// listing and the v3 async reporting endpoints.
type Client struct {
	http      *http.Client
	clientID  string
	secret    string
	redirect  string
	authHost  string
	tokenHost string
	apiHost   string
	log       *zap.SugaredLogger
	limiter   *rate.Limiter
}

func NewClient(cfg *config.Config, log *zap.SugaredLogger) *Client {
	timeout := cfg.AmazonAds.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		clientID:  cfg.AmazonAds.ClientID,
		secret:    cfg.AmazonAds.ClientSecret,
		redirect:  cfg.AmazonAds.RedirectURI,
		authHost:  cfg.AmazonAds.AuthHost,
		tokenHost: cfg.AmazonAds.TokenHost,
		apiHost:   cfg.AmazonAds.APIHost,
		log:       log,
		// Amazon throttles the reporting API aggressively; stay well under it.
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

// doJSON issues a request with standard Amazon Ads headers and decodes a JSON
// response into out when the status is 2xx. Non-2xx statuses map to the typed
// errors in errors.go.
func (c *Client) doJSON(ctx context.Context, method, url string, headers map[string]string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return &InvalidRequestError{Body: string(respBody)}
	case resp.StatusCode == http.StatusTooEarly:
		return &DuplicateReportError{
			DuplicateReportID: extractDuplicateReportID(respBody),
			Body:              string(respBody),
		}
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
}

// apiHeaders builds the header set required on advertising API calls.
func (c *Client) apiHeaders(accessToken, profileID string) map[string]string {
	h := map[string]string{
		"Authorization":                   "Bearer " + accessToken,
		"Amazon-Advertising-API-ClientId": c.clientID,
	}
	if profileID != "" {
		h["Amazon-Advertising-API-Scope"] = profileID
	}
	return h
}
