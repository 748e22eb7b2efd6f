package adsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const reportContentType = "application/vnd.createasyncreportrequest.v3+json"

// ReportConfiguration is the v3 reporting request configuration block.
type ReportConfiguration struct {
	AdProduct    string   `json:"adProduct"`
	GroupBy      []string `json:"groupBy"`
	Columns      []string `json:"columns"`
	ReportTypeID string   `json:"reportTypeId"`
	TimeUnit     string   `json:"timeUnit"`
	Format       string   `json:"format"`
}

// CreateReportRequest is the POST /reporting/reports body.
type CreateReportRequest struct {
	Name          string              `json:"name"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	Configuration ReportConfiguration `json:"configuration"`
}

// ReportResponse is the report job state returned on creation and status polls.
type ReportResponse struct {
	ReportID      string  `json:"reportId"`
	Name          string  `json:"name"`
	Status        string  `json:"status"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
	URL           *string `json:"url"`
	URLExpiresAt  *string `json:"urlExpiresAt"`
	FileSize      *int64  `json:"fileSize"`
	FailureReason *string `json:"failureReason"`

	Configuration *ReportConfiguration `json:"configuration"`
}

// Time parses one of Amazon's RFC3339 timestamp strings; nil on empty or malformed.
func ParseReportTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// CreateReport submits an async report job for one profile.
// 400 maps to *InvalidRequestError, 425 to *DuplicateReportError.
func (c *Client) CreateReport(ctx context.Context, profileID, accessToken string, req *CreateReportRequest) (*ReportResponse, error) {
	headers := c.apiHeaders(accessToken, profileID)
	headers["Content-Type"] = reportContentType

	var resp ReportResponse
	if err := c.doJSON(ctx, http.MethodPost, c.apiHost+"/reporting/reports", headers, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReport polls the current state of a report job.
func (c *Client) GetReport(ctx context.Context, profileID, accessToken, reportID string) (*ReportResponse, error) {
	var resp ReportResponse
	url := c.apiHost + "/reporting/reports/" + reportID
	if err := c.doJSON(ctx, http.MethodGet, url, c.apiHeaders(accessToken, profileID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadReport fetches a completed report's payload from its signed URL.
// The body is gzip-compressed JSON; decompression is the caller's concern.
func (c *Client) DownloadReport(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report payload: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
