package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/pkg/logctx"
)

const defaultProcessLimit = 20

// CreateReportsForProfiles submits reports for every requested ad product
// across the given connections. Failures are isolated per (profile, product):
// one broken profile never blocks the rest of the batch, and a profile counts
// as processed when at least one product succeeded for it. Profiles outside
// the supported marketplace are skipped, not failed.
func (s *Service) CreateReportsForProfiles(ctx context.Context, conns []*models.Connection, products []models.AdProduct, startDate, endDate string) (*BatchCreateResult, error) {
	log := logctx.FromCtx(ctx, s.log)
	if len(products) == 0 {
		products = models.AllAdProducts()
	}
	startDate, endDate = defaultDateRange(startDate, endDate)

	res := &BatchCreateResult{
		Details: make(map[models.AdProduct]*AdProductDetail, len(products)),
	}
	for _, p := range products {
		res.Details[p] = &AdProductDetail{Success: true}
	}

	supported := s.cfg.AmazonAds.SupportedCountry
	for _, conn := range conns {
		if supported != "" && conn.CountryCode != supported {
			log.Debugw("profile skipped, unsupported marketplace",
				"profile_id", conn.ProfileID, "country_code", conn.CountryCode)
			continue
		}
		res.TotalProfiles++

		token, err := s.conns.AccessToken(ctx, conn)
		if err != nil {
			log.Errorw("access token refresh failed",
				"profile_id", conn.ProfileID, "error", err)
			res.FailedProfiles = append(res.FailedProfiles, conn.ProfileID)
			for _, p := range products {
				d := res.Details[p]
				d.Success = false
				d.FailedProfiles = append(d.FailedProfiles, conn.ProfileID)
			}
			continue
		}

		profileOK := false
		for _, p := range products {
			d := res.Details[p]
			if err := s.createOne(ctx, conn, token, p, startDate, endDate); err != nil {
				log.Errorw("report creation failed",
					"profile_id", conn.ProfileID, "ad_product", p, "error", err)
				d.Success = false
				d.FailedProfiles = append(d.FailedProfiles, conn.ProfileID)
				continue
			}
			d.CreatedReports++
			d.ProcessedProfiles++
			res.CreatedReports++
			profileOK = true
		}
		if profileOK {
			res.ProcessedProfiles++
		} else {
			res.FailedProfiles = append(res.FailedProfiles, conn.ProfileID)
		}
	}

	res.Success = res.ProcessedProfiles > 0 || res.TotalProfiles == 0
	res.Message = fmt.Sprintf("%d reports created across %d of %d profiles",
		res.CreatedReports, res.ProcessedProfiles, res.TotalProfiles)
	return res, nil
}

// createOne submits one report, routing 425 through duplicate reconciliation.
// A reconciled duplicate counts as success: the report exists either way.
func (s *Service) createOne(ctx context.Context, conn *models.Connection, token string, product models.AdProduct, startDate, endDate string) error {
	_, err := s.CreateReport(ctx, conn.ProfileID, token, product, startDate, endDate, conn.UserID)
	if err == nil {
		return nil
	}

	var dup *adsapi.DuplicateReportError
	if errors.As(err, &dup) {
		_, _, rerr := s.ResolveDuplicate(ctx, dup, conn.ProfileID, token, product, startDate, endDate, conn.UserID)
		return rerr
	}
	return err
}

// SyncUserReports submits reports for all of a user's connections.
func (s *Service) SyncUserReports(ctx context.Context, userID string, products []models.AdProduct, startDate, endDate string) (*BatchCreateResult, error) {
	conns, err := s.conns.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return nil, ErrNoConnections
	}
	return s.CreateReportsForProfiles(ctx, conns, products, startDate, endDate)
}

// SyncProfileReports submits reports for a single profile.
func (s *Service) SyncProfileReports(ctx context.Context, profileID string, products []models.AdProduct, startDate, endDate string) (*BatchCreateResult, error) {
	conn, err := s.conns.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.CreateReportsForProfiles(ctx, []*models.Connection{conn}, products, startDate, endDate)
}

// ProcessMultipleReports drains pending reports through ProcessReport.
// A report counts as processed once its payload is downloaded; reports still
// generating on Amazon's side stay pending and are picked up by a later run.
func (s *Service) ProcessMultipleReports(ctx context.Context, userID, profileID string, limit int) (*BatchProcessResult, error) {
	log := logctx.FromCtx(ctx, s.log)
	if limit <= 0 {
		limit = defaultProcessLimit
	}

	pending, err := s.store.ListPendingReports(ctx, userID, profileID, limit)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 && (userID != "" || profileID != "") {
		return nil, ErrNoMatchingReports
	}

	res := &BatchProcessResult{TotalReports: len(pending)}
	for _, rec := range pending {
		pr, err := s.ProcessReport(ctx, rec.ReportID)
		if err != nil {
			log.Errorw("report processing failed", "report_id", rec.ReportID, "error", err)
			res.FailedReports++
			res.Details = append(res.Details, &ProcessResult{
				ReportID: rec.ReportID,
				Message:  err.Error(),
			})
			continue
		}
		if pr.DownloadStatus == models.DownloadStatusCompleted {
			res.ProcessedReports++
		} else if pr.DownloadStatus == models.DownloadStatusFailed {
			res.FailedReports++
		}
		res.Details = append(res.Details, pr)
	}
	return res, nil
}
