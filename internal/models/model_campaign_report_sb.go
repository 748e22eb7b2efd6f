package models

import "time"

// CampaignReportSB is one Sponsored Brands fact row per (campaign, day).
type CampaignReportSB struct {
	ID         int64  `gorm:"column:id;primary_key;autoIncrement" json:"-"`
	ReportID   string `gorm:"column:report_id;type:varchar(64);not null;uniqueIndex:unique_sb_report_campaign_date,priority:1" json:"report_id"`
	ProfileID  string `gorm:"column:profile_id;type:varchar(64);not null;index:idx_sb_profile_id" json:"profile_id"`
	CampaignID string `gorm:"column:campaign_id;type:varchar(64);not null;uniqueIndex:unique_sb_report_campaign_date,priority:2" json:"campaignId"`
	Date       string `gorm:"column:date;type:varchar(10);not null;uniqueIndex:unique_sb_report_campaign_date,priority:3" json:"date"`
	UserID     string `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`

	CampaignName               string  `gorm:"column:campaign_name;type:varchar(255)" json:"campaignName"`
	CampaignStatus             string  `gorm:"column:campaign_status;type:varchar(32)" json:"campaignStatus"`
	CampaignBudgetAmount       float64 `gorm:"column:campaign_budget_amount" json:"campaignBudgetAmount"`
	CampaignBudgetType         string  `gorm:"column:campaign_budget_type;type:varchar(32)" json:"campaignBudgetType"`
	CampaignBudgetCurrencyCode string  `gorm:"column:campaign_budget_currency_code;type:varchar(8)" json:"campaignBudgetCurrencyCode"`

	Impressions         int64   `gorm:"column:impressions" json:"impressions"`
	ViewableImpressions int64   `gorm:"column:viewable_impressions" json:"viewableImpressions"`
	Clicks              int64   `gorm:"column:clicks" json:"clicks"`
	Cost                float64 `gorm:"column:cost" json:"cost"`

	Purchases       int64   `gorm:"column:purchases" json:"purchases"`
	PurchasesClicks int64   `gorm:"column:purchases_clicks" json:"purchasesClicks"`
	Sales           float64 `gorm:"column:sales" json:"sales"`
	SalesClicks     float64 `gorm:"column:sales_clicks" json:"salesClicks"`
	UnitsSold       int64   `gorm:"column:units_sold" json:"unitsSold"`
	DetailPageViews int64   `gorm:"column:detail_page_views" json:"detailPageViews"`

	NewToBrandPurchases int64   `gorm:"column:new_to_brand_purchases" json:"newToBrandPurchases"`
	NewToBrandSales     float64 `gorm:"column:new_to_brand_sales" json:"newToBrandSales"`
	NewToBrandUnitsSold int64   `gorm:"column:new_to_brand_units_sold" json:"newToBrandUnitsSold"`

	VideoCompleteViews      int64 `gorm:"column:video_complete_views" json:"videoCompleteViews"`
	VideoFirstQuartileViews int64 `gorm:"column:video_first_quartile_views" json:"videoFirstQuartileViews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CampaignReportSB) TableName() string { return "campaign_reports_sb" }
