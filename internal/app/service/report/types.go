package report

import (
	"context"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/pkg/types"
)

// reportAPI is the slice of the Amazon client the report lifecycle needs.
type reportAPI interface {
	CreateReport(ctx context.Context, profileID, accessToken string, req *adsapi.CreateReportRequest) (*adsapi.ReportResponse, error)
	GetReport(ctx context.Context, profileID, accessToken, reportID string) (*adsapi.ReportResponse, error)
	DownloadReport(ctx context.Context, url string) ([]byte, error)
}

// credentialSource resolves connections and short-lived access tokens.
type credentialSource interface {
	GetByProfileID(ctx context.Context, profileID string) (*models.Connection, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Connection, error)
	AccessToken(ctx context.Context, conn *models.Connection) (string, error)
}

// objectStore persists raw report payloads.
type objectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// ProcessResult describes the outcome of driving one report through the
// lifecycle state machine.
type ProcessResult struct {
	ReportID        string                 `json:"report_id"`
	Status          models.ReportStatus    `json:"status"`
	DownloadStatus  models.DownloadStatus  `json:"download_status"`
	ProcessedStatus models.ProcessedStatus `json:"processed_status"`
	Message         string                 `json:"message"`
	StoragePath     string                 `json:"storage_path,omitempty"`
}

// BatchProcessResult aggregates a process_multiple_reports run.
type BatchProcessResult struct {
	TotalReports     int              `json:"total_reports"`
	ProcessedReports int              `json:"processed_reports"`
	FailedReports    int              `json:"failed_reports"`
	Details          []*ProcessResult `json:"details"`
}

// AdProductDetail is the per-product breakdown of a batch creation run.
type AdProductDetail struct {
	Success           bool     `json:"success"`
	CreatedReports    int      `json:"created_reports"`
	ProcessedProfiles int      `json:"processed_profiles"`
	FailedProfiles    []string `json:"failed_profiles"`
	Message           string   `json:"message,omitempty"`
}

// BatchCreateResult aggregates a create_reports_for_profiles run.
type BatchCreateResult struct {
	Success           bool                                  `json:"success"`
	TotalProfiles     int                                   `json:"total_profiles"`
	ProcessedProfiles int                                   `json:"processed_profiles"`
	CreatedReports    int                                   `json:"created_reports"`
	Message           string                                `json:"message"`
	Details           map[models.AdProduct]*AdProductDetail `json:"details"`
	FailedProfiles    []string                              `json:"failed_profiles"`
}

// ScanReportsRequest is a filtered, paginated listing over the reports table.
type ScanReportsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanReportsResponse struct {
	Items []*models.Report `json:"items"`
	Total int64            `json:"total"`
}
