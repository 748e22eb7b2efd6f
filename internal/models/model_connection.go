package models

import (
	"time"
)

// Connection is one authorized Amazon Ads profile belonging to one user.
// RefreshToken is stored encrypted; the connection service owns decryption.
type Connection struct {
	ID            string `gorm:"column:id;primary_key;type:uuid" json:"id"`
	UserID        string `gorm:"column:user_id;type:varchar(64);not null;index:idx_connection_user_id" json:"user_id"`
	ProfileID     string `gorm:"column:profile_id;type:varchar(64);not null;uniqueIndex:unique_connection_profile_id" json:"profile_id"`
	CountryCode   string `gorm:"column:country_code;type:varchar(8)" json:"country_code"`
	CurrencyCode  string `gorm:"column:currency_code;type:varchar(8)" json:"currency_code"`
	MarketplaceID string `gorm:"column:marketplace_id;type:varchar(32)" json:"marketplace_id"`
	AccountName   string `gorm:"column:account_name;type:varchar(255)" json:"account_name"`
	AccountType   string `gorm:"column:account_type;type:varchar(32)" json:"account_type"`
	RefreshToken  string `gorm:"column:refresh_token;type:text;not null" json:"-"`
	IsActive      bool   `gorm:"column:is_active;default:false" json:"is_active"`
	// MainAccountID links the profile to the owning Amazon main account, when known.
	MainAccountID *int64    `gorm:"column:main_account_id" json:"main_account_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Connection) TableName() string { return "amazon_ads_connections" }

// OAuthState is a short-lived CSRF token issued when starting the OAuth flow.
type OAuthState struct {
	ID        string    `gorm:"column:id;primary_key;type:uuid" json:"id"`
	State     string    `gorm:"column:state;type:varchar(64);not null;uniqueIndex:unique_oauth_state" json:"state"`
	UserID    string    `gorm:"column:user_id;type:varchar(64);not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (OAuthState) TableName() string { return "amazon_ads_states" }
