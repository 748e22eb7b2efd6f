package report

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/pkg/types"
)

// Storage is the persistence surface the report lifecycle writes through.
// Two upsert keys exist on the reports table: the composite coordinates key
// used on creation, and the report id used when reconciling a duplicate or
// mirroring status (the row may not have existed locally at all).
type Storage interface {
	GetReport(ctx context.Context, reportID string) (*models.Report, error)
	UpsertReportByCoordinates(ctx context.Context, r *models.Report) error
	UpsertReportByID(ctx context.Context, r *models.Report) error
	UpdateReportFields(ctx context.Context, reportID string, fields map[string]any) error
	ListPendingReports(ctx context.Context, userID, profileID string, limit int) ([]*models.Report, error)
	ScanReports(ctx context.Context, req *ScanReportsRequest) (*ScanReportsResponse, error)

	UpsertSPRows(ctx context.Context, rows []*models.CampaignReportSP) error
	UpsertSBRows(ctx context.Context, rows []*models.CampaignReportSB) error
	UpsertSDRows(ctx context.Context, rows []*models.CampaignReportSD) error
}

type gormStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}

func (s *gormStorage) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	var r models.Report
	err := s.db.WithContext(ctx).Where("report_id = ?", reportID).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return &r, nil
}

// reportUpdateColumns are the mutable fields refreshed on every upsert.
var reportUpdateColumns = []string{
	"status", "download_status", "processed_status", "url", "url_expires_at",
	"file_size", "failure_reason", "amazon_created_at", "amazon_updated_at",
	"updated_at",
}

// reportCoordinateUpdateColumns additionally adopt the submission's fresh
// report id and clear the archived payload path: when Amazon issues a new id
// for already-used coordinates, the old payload no longer belongs to the row.
var reportCoordinateUpdateColumns = append([]string{"report_id", "storage_path"}, reportUpdateColumns...)

func (s *gormStorage) UpsertReportByCoordinates(ctx context.Context, r *models.Report) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "profile_id"}, {Name: "ad_product"}, {Name: "start_date"},
			{Name: "end_date"}, {Name: "report_type_id"},
		},
		DoUpdates: clause.AssignmentColumns(reportCoordinateUpdateColumns),
	}).Create(r).Error
	if err != nil {
		return fmt.Errorf("failed to upsert report by coordinates: %w", err)
	}
	return nil
}

func (s *gormStorage) UpsertReportByID(ctx context.Context, r *models.Report) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_id"}},
		DoUpdates: clause.AssignmentColumns(reportUpdateColumns),
	}).Create(r).Error
	if err != nil {
		return fmt.Errorf("failed to upsert report by id: %w", err)
	}
	return nil
}

func (s *gormStorage) UpdateReportFields(ctx context.Context, reportID string, fields map[string]any) error {
	err := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("report_id = ?", reportID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update report %s: %w", reportID, err)
	}
	return nil
}

func (s *gormStorage) ListPendingReports(ctx context.Context, userID, profileID string, limit int) ([]*models.Report, error) {
	q := s.db.WithContext(ctx).
		Where("status = ?", models.ReportStatusPending).
		Where("download_status = ?", models.DownloadStatusPending)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if profileID != "" {
		q = q.Where("profile_id = ?", profileID)
	}

	var rows []*models.Report
	if err := q.Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending reports: %w", err)
	}
	return rows, nil
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

func (s *gormStorage) ScanReports(ctx context.Context, req *ScanReportsRequest) (*ScanReportsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Report{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}

	var rows []*models.Report
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return &ScanReportsResponse{Items: rows, Total: total}, nil
}

func (s *gormStorage) UpsertSPRows(ctx context.Context, rows []*models.CampaignReportSP) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_id"}, {Name: "campaign_id"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert SP rows: %w", err)
	}
	return nil
}

func (s *gormStorage) UpsertSBRows(ctx context.Context, rows []*models.CampaignReportSB) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_id"}, {Name: "campaign_id"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert SB rows: %w", err)
	}
	return nil
}

func (s *gormStorage) UpsertSDRows(ctx context.Context, rows []*models.CampaignReportSD) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_id"}, {Name: "campaign_id"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert SD rows: %w", err)
	}
	return nil
}
