package models

import (
	"time"

	"gorm.io/datatypes"
)

// Report is one async report job tracked against the Amazon reporting API.
//
// Three status axes are tracked separately: Status mirrors the external job,
// DownloadStatus records whether this system fetched the payload, and
// ProcessedStatus records whether decoded rows were fully stored. They are
// driven by different events and must never be collapsed into one column.
//
// The composite unique index guarantees that a second submission for the same
// (profile, ad product, date range, report type) coordinates resolves to the
// existing row instead of creating a duplicate.
type Report struct {
	ReportID     string    `gorm:"column:report_id;primary_key;type:varchar(64)" json:"report_id"`
	UserID       string    `gorm:"column:user_id;type:varchar(64);not null;index:idx_report_user_id" json:"user_id"`
	ProfileID    string    `gorm:"column:profile_id;type:varchar(64);not null;uniqueIndex:unique_report_coordinates,priority:1" json:"profile_id"`
	AdProduct    AdProduct `gorm:"column:ad_product;type:varchar(32);not null;uniqueIndex:unique_report_coordinates,priority:2" json:"ad_product"`
	StartDate    string    `gorm:"column:start_date;type:varchar(10);not null;uniqueIndex:unique_report_coordinates,priority:3" json:"start_date"`
	EndDate      string    `gorm:"column:end_date;type:varchar(10);not null;uniqueIndex:unique_report_coordinates,priority:4" json:"end_date"`
	ReportTypeID string    `gorm:"column:report_type_id;type:varchar(32);not null;uniqueIndex:unique_report_coordinates,priority:5" json:"report_type_id"`

	TimeUnit string `gorm:"column:time_unit;type:varchar(16);not null" json:"time_unit"`
	Format   string `gorm:"column:format;type:varchar(16);not null" json:"format"`

	Status          ReportStatus    `gorm:"column:status;type:varchar(16);not null;index:idx_report_status" json:"status"`
	DownloadStatus  DownloadStatus  `gorm:"column:download_status;type:varchar(16);not null" json:"download_status"`
	ProcessedStatus ProcessedStatus `gorm:"column:processed_status;type:varchar(16);not null" json:"processed_status"`

	StoragePath   *string `gorm:"column:storage_path;type:text" json:"storage_path"`
	FailureReason *string `gorm:"column:failure_reason;type:text" json:"failure_reason"`

	URL          *string    `gorm:"column:url;type:text" json:"url"`
	URLExpiresAt *time.Time `gorm:"column:url_expires_at" json:"url_expires_at"`
	FileSize     *int64     `gorm:"column:file_size" json:"file_size"`

	// Configuration snapshots the column set submitted with the request.
	Configuration datatypes.JSON `gorm:"column:configuration;type:jsonb" json:"configuration"`

	AmazonCreatedAt *time.Time `gorm:"column:amazon_created_at" json:"amazon_created_at"`
	AmazonUpdatedAt *time.Time `gorm:"column:amazon_updated_at" json:"amazon_updated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Report) TableName() string { return "reports" }

// Downloaded reports whether the payload was already fetched and stored.
func (r *Report) Downloaded() bool {
	return r != nil && r.DownloadStatus == DownloadStatusCompleted && r.StoragePath != nil && *r.StoragePath != ""
}
