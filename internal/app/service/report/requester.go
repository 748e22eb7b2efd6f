package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/pkg/logctx"
)

const dateLayout = "2006-01-02"

// defaultDateRange fills in missing bounds with [today-7, today-1].
func defaultDateRange(startDate, endDate string) (string, string) {
	now := time.Now()
	if startDate == "" {
		startDate = now.AddDate(0, 0, -7).Format(dateLayout)
	}
	if endDate == "" {
		endDate = now.AddDate(0, 0, -1).Format(dateLayout)
	}
	return startDate, endDate
}

// buildCreateRequest assembles the v3 reporting request for one ad product.
func buildCreateRequest(product models.AdProduct, startDate, endDate string) *adsapi.CreateReportRequest {
	return &adsapi.CreateReportRequest{
		Name:      fmt.Sprintf("%s campaigns %s to %s", product, startDate, endDate),
		StartDate: startDate,
		EndDate:   endDate,
		Configuration: adsapi.ReportConfiguration{
			AdProduct:    string(product),
			GroupBy:      []string{"campaign"},
			Columns:      columnsFor(product),
			ReportTypeID: product.ReportTypeID(),
			TimeUnit:     timeUnitDaily,
			Format:       formatGzipJSON,
		},
	}
}

// reportRowFromResponse maps an API response into a local row.
func reportRowFromResponse(resp *adsapi.ReportResponse, product models.AdProduct, profileID, userID, startDate, endDate string) *models.Report {
	row := &models.Report{
		ReportID:        resp.ReportID,
		UserID:          userID,
		ProfileID:       profileID,
		AdProduct:       product,
		StartDate:       startDate,
		EndDate:         endDate,
		ReportTypeID:    product.ReportTypeID(),
		TimeUnit:        timeUnitDaily,
		Format:          formatGzipJSON,
		Status:          models.ReportStatus(resp.Status),
		DownloadStatus:  models.DownloadStatusPending,
		ProcessedStatus: models.ProcessedStatusPending,
		URL:             resp.URL,
		FileSize:        resp.FileSize,
		FailureReason:   resp.FailureReason,
		AmazonCreatedAt: adsapi.ParseReportTime(resp.CreatedAt),
		AmazonUpdatedAt: adsapi.ParseReportTime(resp.UpdatedAt),
	}
	if resp.URLExpiresAt != nil {
		row.URLExpiresAt = adsapi.ParseReportTime(*resp.URLExpiresAt)
	}
	if row.Status == "" {
		row.Status = models.ReportStatusPending
	}

	cfg := resp.Configuration
	if cfg == nil {
		cfg = &buildCreateRequest(product, startDate, endDate).Configuration
	}
	if raw, err := json.Marshal(cfg); err == nil {
		row.Configuration = datatypes.JSON(raw)
	}
	return row
}

// CreateReport submits one async report job and persists the resulting row,
// keyed on (profile, ad product, date range, report type) so resubmission
// converges to a single row.
//
// 425 surfaces as *adsapi.DuplicateReportError; the caller must route it to
// ResolveDuplicate instead of retrying the submission.
func (s *Service) CreateReport(ctx context.Context, profileID, accessToken string, product models.AdProduct, startDate, endDate, userID string) (*models.Report, error) {
	startDate, endDate = defaultDateRange(startDate, endDate)

	resp, err := s.api.CreateReport(ctx, profileID, accessToken, buildCreateRequest(product, startDate, endDate))
	if err != nil {
		return nil, err
	}

	row := reportRowFromResponse(resp, product, profileID, userID, startDate, endDate)
	if err := s.store.UpsertReportByCoordinates(ctx, row); err != nil {
		return nil, err
	}

	s.metrics.IncCreated(string(product))
	logctx.FromCtx(ctx, s.log).Infow("report created",
		"report_id", row.ReportID, "profile_id", profileID, "ad_product", product,
		"start_date", startDate, "end_date", endDate, "status", row.Status)
	return row, nil
}
