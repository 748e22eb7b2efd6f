package models

import "time"

// CampaignReportSP is one Sponsored Products fact row per (campaign, day).
// JSON tags match the Amazon reporting column names so decoded payload rows
// unmarshal directly; the unique index makes re-ingestion idempotent.
type CampaignReportSP struct {
	ID         int64  `gorm:"column:id;primary_key;autoIncrement" json:"-"`
	ReportID   string `gorm:"column:report_id;type:varchar(64);not null;uniqueIndex:unique_sp_report_campaign_date,priority:1" json:"report_id"`
	ProfileID  string `gorm:"column:profile_id;type:varchar(64);not null;index:idx_sp_profile_id" json:"profile_id"`
	CampaignID string `gorm:"column:campaign_id;type:varchar(64);not null;uniqueIndex:unique_sp_report_campaign_date,priority:2" json:"campaignId"`
	Date       string `gorm:"column:date;type:varchar(10);not null;uniqueIndex:unique_sp_report_campaign_date,priority:3" json:"date"`
	UserID     string `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`

	CampaignName               string  `gorm:"column:campaign_name;type:varchar(255)" json:"campaignName"`
	CampaignStatus             string  `gorm:"column:campaign_status;type:varchar(32)" json:"campaignStatus"`
	CampaignBudgetAmount       float64 `gorm:"column:campaign_budget_amount" json:"campaignBudgetAmount"`
	CampaignBudgetType         string  `gorm:"column:campaign_budget_type;type:varchar(32)" json:"campaignBudgetType"`
	CampaignBudgetCurrencyCode string  `gorm:"column:campaign_budget_currency_code;type:varchar(8)" json:"campaignBudgetCurrencyCode"`

	Impressions      int64   `gorm:"column:impressions" json:"impressions"`
	Clicks           int64   `gorm:"column:clicks" json:"clicks"`
	Cost             float64 `gorm:"column:cost" json:"cost"`
	Spend            float64 `gorm:"column:spend" json:"spend"`
	ClickThroughRate float64 `gorm:"column:click_through_rate" json:"clickThroughRate"`
	CostPerClick     float64 `gorm:"column:cost_per_click" json:"costPerClick"`

	Purchases1d  int64 `gorm:"column:purchases_1d" json:"purchases1d"`
	Purchases7d  int64 `gorm:"column:purchases_7d" json:"purchases7d"`
	Purchases14d int64 `gorm:"column:purchases_14d" json:"purchases14d"`
	Purchases30d int64 `gorm:"column:purchases_30d" json:"purchases30d"`

	PurchasesSameSku1d  int64 `gorm:"column:purchases_same_sku_1d" json:"purchasesSameSku1d"`
	PurchasesSameSku7d  int64 `gorm:"column:purchases_same_sku_7d" json:"purchasesSameSku7d"`
	PurchasesSameSku14d int64 `gorm:"column:purchases_same_sku_14d" json:"purchasesSameSku14d"`
	PurchasesSameSku30d int64 `gorm:"column:purchases_same_sku_30d" json:"purchasesSameSku30d"`

	Sales1d  float64 `gorm:"column:sales_1d" json:"sales1d"`
	Sales7d  float64 `gorm:"column:sales_7d" json:"sales7d"`
	Sales14d float64 `gorm:"column:sales_14d" json:"sales14d"`
	Sales30d float64 `gorm:"column:sales_30d" json:"sales30d"`

	AttributedSalesSameSku1d  float64 `gorm:"column:attributed_sales_same_sku_1d" json:"attributedSalesSameSku1d"`
	AttributedSalesSameSku7d  float64 `gorm:"column:attributed_sales_same_sku_7d" json:"attributedSalesSameSku7d"`
	AttributedSalesSameSku14d float64 `gorm:"column:attributed_sales_same_sku_14d" json:"attributedSalesSameSku14d"`
	AttributedSalesSameSku30d float64 `gorm:"column:attributed_sales_same_sku_30d" json:"attributedSalesSameSku30d"`

	UnitsSoldClicks1d  int64 `gorm:"column:units_sold_clicks_1d" json:"unitsSoldClicks1d"`
	UnitsSoldClicks7d  int64 `gorm:"column:units_sold_clicks_7d" json:"unitsSoldClicks7d"`
	UnitsSoldClicks14d int64 `gorm:"column:units_sold_clicks_14d" json:"unitsSoldClicks14d"`
	UnitsSoldClicks30d int64 `gorm:"column:units_sold_clicks_30d" json:"unitsSoldClicks30d"`

	TopOfSearchImpressionShare float64 `gorm:"column:top_of_search_impression_share" json:"topOfSearchImpressionShare"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CampaignReportSP) TableName() string { return "campaign_reports_sp" }
