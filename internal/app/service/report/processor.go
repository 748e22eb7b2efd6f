package report

import (
	"context"
	"fmt"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/objstore"
	"github.com/buffapp/adsync/pkg/logctx"
)

// ProcessReport drives one report through the remainder of its lifecycle:
// poll status, download the payload once Amazon finishes, store the raw file,
// decode and sink the rows. Every call is safe to repeat; a report whose
// payload is already stored short-circuits without touching the API.
func (s *Service) ProcessReport(ctx context.Context, reportID string) (*ProcessResult, error) {
	log := logctx.FromCtx(ctx, s.log)

	rec, err := s.store.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if rec.Downloaded() {
		return result(rec, "report already downloaded", derefStr(rec.StoragePath)), nil
	}

	conn, err := s.conns.GetByProfileID(ctx, rec.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("resolve connection for profile %s: %w", rec.ProfileID, err)
	}
	token, err := s.conns.AccessToken(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("refresh access token for profile %s: %w", rec.ProfileID, err)
	}

	rec, err = s.SyncStatus(ctx, rec, token)
	if err != nil {
		return nil, fmt.Errorf("sync status of report %s: %w", reportID, err)
	}

	switch rec.Status {
	case models.ReportStatusFailed:
		reason := derefStr(rec.FailureReason)
		if reason == "" {
			reason = "report generation failed"
		}
		if err := s.markDownloadFailed(ctx, rec, reason); err != nil {
			return nil, err
		}
		s.metrics.IncProcessed("failed")
		return result(rec, "report failed upstream: "+reason, ""), nil
	case models.ReportStatusCompleted:
		// fall through to download
	default:
		s.metrics.IncProcessed("pending")
		return result(rec, "report not ready yet", ""), nil
	}

	if rec.URL == nil || *rec.URL == "" {
		// Completed but not yet downloadable; a later poll picks it up.
		s.metrics.IncProcessed("pending")
		return result(rec, "completed report carries no download url yet", ""), nil
	}

	payload, err := s.api.DownloadReport(ctx, *rec.URL)
	if err != nil {
		if ferr := s.markDownloadFailed(ctx, rec, err.Error()); ferr != nil {
			return nil, ferr
		}
		s.metrics.IncProcessed("failed")
		return result(rec, "download failed: "+err.Error(), ""), nil
	}

	raw, err := decompressPayload(payload)
	if err != nil {
		if ferr := s.markDownloadFailed(ctx, rec, err.Error()); ferr != nil {
			return nil, ferr
		}
		s.metrics.IncProcessed("failed")
		return result(rec, "decode failed: "+err.Error(), ""), nil
	}
	rows, err := decodeRows(raw)
	if err != nil {
		if ferr := s.markDownloadFailed(ctx, rec, err.Error()); ferr != nil {
			return nil, ferr
		}
		s.metrics.IncProcessed("failed")
		return result(rec, "decode failed: "+err.Error(), ""), nil
	}

	key := objstore.ReportKey(rec.UserID, rec.ProfileID, string(rec.AdProduct), rec.ReportID)
	if err := s.objects.Put(ctx, key, objstore.ContentTypeJSON, raw); err != nil {
		if ferr := s.markDownloadFailed(ctx, rec, err.Error()); ferr != nil {
			return nil, ferr
		}
		s.metrics.IncProcessed("failed")
		return result(rec, "storage upload failed: "+err.Error(), ""), nil
	}

	if err := s.store.UpdateReportFields(ctx, rec.ReportID, map[string]any{
		"download_status": models.DownloadStatusCompleted,
		"storage_path":    key,
	}); err != nil {
		return nil, err
	}
	rec.DownloadStatus = models.DownloadStatusCompleted
	rec.StoragePath = &key

	written, err := s.sinkRows(ctx, rec, rows)
	processed := models.ProcessedStatusCompleted
	msg := fmt.Sprintf("report processed, %d rows stored", written)
	if err != nil {
		processed = models.ProcessedStatusFailed
		msg = "row persistence failed: " + err.Error()
		log.Errorw("report rows not persisted", "report_id", rec.ReportID, "error", err)
	}
	if uerr := s.store.UpdateReportFields(ctx, rec.ReportID, map[string]any{
		"processed_status": processed,
	}); uerr != nil {
		return nil, uerr
	}
	rec.ProcessedStatus = processed

	if err != nil {
		s.metrics.IncProcessed("failed")
	} else {
		s.metrics.IncProcessed("completed")
		log.Infow("report processed",
			"report_id", rec.ReportID, "ad_product", rec.AdProduct, "rows", written, "storage_path", key)
	}
	return result(rec, msg, key), nil
}

func (s *Service) markDownloadFailed(ctx context.Context, rec *models.Report, reason string) error {
	if err := s.store.UpdateReportFields(ctx, rec.ReportID, map[string]any{
		"download_status": models.DownloadStatusFailed,
		"failure_reason":  &reason,
	}); err != nil {
		return err
	}
	rec.DownloadStatus = models.DownloadStatusFailed
	rec.FailureReason = &reason
	return nil
}

func result(rec *models.Report, msg, storagePath string) *ProcessResult {
	return &ProcessResult{
		ReportID:        rec.ReportID,
		Status:          rec.Status,
		DownloadStatus:  rec.DownloadStatus,
		ProcessedStatus: rec.ProcessedStatus,
		Message:         msg,
		StoragePath:     storagePath,
	}
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
