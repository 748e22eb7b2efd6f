package adsapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the Amazon Ads API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amazon ads API returned status %d: %s", e.StatusCode, e.Body)
}

// InvalidRequestError is a 400 from the reporting API. The request is
// malformed and must not be retried.
type InvalidRequestError struct {
	Body string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("amazon ads API rejected request: %s", e.Body)
}

// DuplicateReportError is a 425 from the report creation endpoint: a report
// with identical parameters already exists server-side. The duplicate's id is
// carried as a field so callers can reconcile against it instead of parsing
// error strings.
type DuplicateReportError struct {
	DuplicateReportID string
	Body              string
}

func (e *DuplicateReportError) Error() string {
	return fmt.Sprintf("report is a duplicate of %s", e.DuplicateReportID)
}

// errorDetail is the error body shape returned by the reporting API.
type errorDetail struct {
	Detail string `json:"detail"`
}

// extractDuplicateReportID pulls the pre-existing report id out of a 425
// error body. Amazon formats the detail as "... duplicate of : <id>".
func extractDuplicateReportID(body []byte) string {
	var d errorDetail
	if err := json.Unmarshal(body, &d); err != nil {
		return ""
	}
	const marker = "duplicate of :"
	idx := strings.LastIndex(d.Detail, marker)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(d.Detail[idx+len(marker):])
}
