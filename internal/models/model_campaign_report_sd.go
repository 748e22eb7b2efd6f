package models

import "time"

// CampaignReportSD is one Sponsored Display fact row per (campaign, day).
type CampaignReportSD struct {
	ID         int64  `gorm:"column:id;primary_key;autoIncrement" json:"-"`
	ReportID   string `gorm:"column:report_id;type:varchar(64);not null;uniqueIndex:unique_sd_report_campaign_date,priority:1" json:"report_id"`
	ProfileID  string `gorm:"column:profile_id;type:varchar(64);not null;index:idx_sd_profile_id" json:"profile_id"`
	CampaignID string `gorm:"column:campaign_id;type:varchar(64);not null;uniqueIndex:unique_sd_report_campaign_date,priority:2" json:"campaignId"`
	Date       string `gorm:"column:date;type:varchar(10);not null;uniqueIndex:unique_sd_report_campaign_date,priority:3" json:"date"`
	UserID     string `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`

	CampaignName               string `gorm:"column:campaign_name;type:varchar(255)" json:"campaignName"`
	CampaignStatus             string `gorm:"column:campaign_status;type:varchar(32)" json:"campaignStatus"`
	CampaignBudgetCurrencyCode string `gorm:"column:campaign_budget_currency_code;type:varchar(8)" json:"campaignBudgetCurrencyCode"`
	CostType                   string `gorm:"column:cost_type;type:varchar(16)" json:"costType"`

	Impressions      int64   `gorm:"column:impressions" json:"impressions"`
	ImpressionsViews int64   `gorm:"column:impressions_views" json:"impressionsViews"`
	Clicks           int64   `gorm:"column:clicks" json:"clicks"`
	Cost             float64 `gorm:"column:cost" json:"cost"`

	Purchases       int64   `gorm:"column:purchases" json:"purchases"`
	PurchasesClicks int64   `gorm:"column:purchases_clicks" json:"purchasesClicks"`
	Sales           float64 `gorm:"column:sales" json:"sales"`
	SalesClicks     float64 `gorm:"column:sales_clicks" json:"salesClicks"`
	UnitsSold       int64   `gorm:"column:units_sold" json:"unitsSold"`
	DetailPageViews int64   `gorm:"column:detail_page_views" json:"detailPageViews"`

	NewToBrandPurchases int64   `gorm:"column:new_to_brand_purchases" json:"newToBrandPurchases"`
	NewToBrandSales     float64 `gorm:"column:new_to_brand_sales" json:"newToBrandSales"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CampaignReportSD) TableName() string { return "campaign_reports_sd" }
