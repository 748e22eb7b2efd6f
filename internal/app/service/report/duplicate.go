package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/pkg/logctx"
)

// DuplicateResolution says how a 425 was reconciled.
type DuplicateResolution string

const (
	// ResolutionAlreadyKnown means the duplicate's row already existed locally.
	ResolutionAlreadyKnown DuplicateResolution = "already_known"
	// ResolutionBackfilled means the row was reconstructed from the API.
	ResolutionBackfilled DuplicateResolution = "backfilled"
)

// ResolveDuplicate reconciles a 425 response against local state. Amazon names
// the pre-existing report in the error detail; resubmitting would only yield
// the same 425, so the existing job is adopted instead. If the named report is
// unknown locally its row is rebuilt from a status poll.
func (s *Service) ResolveDuplicate(ctx context.Context, dup *adsapi.DuplicateReportError, profileID, accessToken string, product models.AdProduct, startDate, endDate, userID string) (*models.Report, DuplicateResolution, error) {
	log := logctx.FromCtx(ctx, s.log)

	if dup.DuplicateReportID == "" {
		return nil, "", fmt.Errorf("duplicate report response carried no report id: %s", dup.Body)
	}

	existing, err := s.store.GetReport(ctx, dup.DuplicateReportID)
	if err != nil && !errors.Is(err, ErrReportNotFound) {
		return nil, "", err
	}
	if existing != nil {
		s.metrics.IncDuplicateReconciled()
		log.Infow("duplicate report already tracked",
			"report_id", existing.ReportID, "profile_id", profileID, "ad_product", product)
		return existing, ResolutionAlreadyKnown, nil
	}

	resp, err := s.api.GetReport(ctx, profileID, accessToken, dup.DuplicateReportID)
	if err != nil {
		return nil, "", fmt.Errorf("fetch duplicate report %s: %w", dup.DuplicateReportID, err)
	}

	startDate, endDate = defaultDateRange(startDate, endDate)
	if resp.StartDate != "" {
		startDate = resp.StartDate
	}
	if resp.EndDate != "" {
		endDate = resp.EndDate
	}

	row := reportRowFromResponse(resp, product, profileID, userID, startDate, endDate)
	if err := s.store.UpsertReportByID(ctx, row); err != nil {
		return nil, "", err
	}

	s.metrics.IncDuplicateReconciled()
	log.Infow("duplicate report backfilled",
		"report_id", row.ReportID, "profile_id", profileID, "ad_product", product, "status", row.Status)
	return row, ResolutionBackfilled, nil
}
