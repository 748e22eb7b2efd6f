package report

import (
	"context"
	"time"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/pkg/logctx"
)

// SyncStatus polls the report job and mirrors every poll into the local row,
// so URL, expiry and failure reason stay fresh even when the status itself
// has not moved.
func (s *Service) SyncStatus(ctx context.Context, rec *models.Report, accessToken string) (*models.Report, error) {
	resp, err := s.api.GetReport(ctx, rec.ProfileID, accessToken, rec.ReportID)
	if err != nil {
		return nil, err
	}

	var expires *time.Time
	if resp.URLExpiresAt != nil {
		expires = adsapi.ParseReportTime(*resp.URLExpiresAt)
	}

	fields := map[string]any{
		"status":            models.ReportStatus(resp.Status),
		"url":               resp.URL,
		"url_expires_at":    expires,
		"file_size":         resp.FileSize,
		"failure_reason":    resp.FailureReason,
		"amazon_created_at": adsapi.ParseReportTime(resp.CreatedAt),
		"amazon_updated_at": adsapi.ParseReportTime(resp.UpdatedAt),
	}
	if err := s.store.UpdateReportFields(ctx, rec.ReportID, fields); err != nil {
		return nil, err
	}

	rec.Status = models.ReportStatus(resp.Status)
	rec.URL = resp.URL
	rec.URLExpiresAt = expires
	rec.FileSize = resp.FileSize
	rec.FailureReason = resp.FailureReason
	rec.AmazonCreatedAt = adsapi.ParseReportTime(resp.CreatedAt)
	rec.AmazonUpdatedAt = adsapi.ParseReportTime(resp.UpdatedAt)

	logctx.FromCtx(ctx, s.log).Debugw("report status synced",
		"report_id", rec.ReportID, "status", rec.Status)
	return rec, nil
}
