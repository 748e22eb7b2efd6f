package models

import (
	"time"

	"gorm.io/datatypes"
)

// Campaign is campaign metadata pulled from the Amazon campaign management
// endpoints, one row per (profile, ad product, campaign). Standard fields are
// lifted into columns; the product-specific remainder lives in Settings.
type Campaign struct {
	ID         string    `gorm:"column:id;primary_key;type:uuid" json:"id"`
	ProfileID  string    `gorm:"column:profile_id;type:varchar(64);not null;uniqueIndex:unique_campaign_identity,priority:1" json:"profile_id"`
	AdProduct  AdProduct `gorm:"column:ad_product;type:varchar(32);not null;uniqueIndex:unique_campaign_identity,priority:2" json:"ad_product"`
	CampaignID string    `gorm:"column:campaign_id;type:varchar(64);not null;uniqueIndex:unique_campaign_identity,priority:3" json:"campaign_id"`

	Name        string   `gorm:"column:name;type:varchar(255)" json:"name"`
	State       string   `gorm:"column:state;type:varchar(32)" json:"state"`
	StartDate   *string  `gorm:"column:start_date;type:varchar(10)" json:"start_date"`
	Budget      *float64 `gorm:"column:budget" json:"budget"`
	BudgetType  *string  `gorm:"column:budget_type;type:varchar(32)" json:"budget_type"`
	CostType    *string  `gorm:"column:cost_type;type:varchar(32)" json:"cost_type"`
	PortfolioID *string  `gorm:"column:portfolio_id;type:varchar(64)" json:"portfolio_id"`

	Settings datatypes.JSON `gorm:"column:settings;type:jsonb" json:"settings"`

	LastSyncedAt time.Time `gorm:"column:last_synced_at" json:"last_synced_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Campaign) TableName() string { return "amazon_ads_campaigns" }
