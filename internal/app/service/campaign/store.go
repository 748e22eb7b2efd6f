package campaign

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/buffapp/adsync/internal/models"
)

// Storage persists campaign metadata rows.
type Storage interface {
	UpsertCampaigns(ctx context.Context, rows []*models.Campaign) error
}

type gormStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}

// campaignUpdateColumns are refreshed on every sync; the identity columns
// (profile_id, ad_product, campaign_id) stay.
var campaignUpdateColumns = []string{
	"name", "state", "start_date", "budget", "budget_type", "cost_type",
	"portfolio_id", "settings", "last_synced_at", "updated_at",
}

func (s *gormStorage) UpsertCampaigns(ctx context.Context, rows []*models.Campaign) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "ad_product"}, {Name: "campaign_id"}},
		DoUpdates: clause.AssignmentColumns(campaignUpdateColumns),
	}).Create(rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert campaigns: %w", err)
	}
	return nil
}
