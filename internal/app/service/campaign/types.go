package campaign

import (
	"context"

	"github.com/buffapp/adsync/internal/models"
)

// campaignAPI is the slice of the Amazon client the sync needs.
type campaignAPI interface {
	ListSPCampaigns(ctx context.Context, profileID, accessToken string) ([]map[string]any, error)
	ListSBCampaigns(ctx context.Context, profileID, accessToken string) ([]map[string]any, error)
	ListSDCampaigns(ctx context.Context, profileID, accessToken string) ([]map[string]any, error)
}

// credentialSource resolves connections and access tokens, and records when a
// connection was last synced.
type credentialSource interface {
	ListByUserID(ctx context.Context, userID string) ([]*models.Connection, error)
	AccessToken(ctx context.Context, conn *models.Connection) (string, error)
	Touch(ctx context.Context, profileID string) error
}

// FailedProfile names a profile the sync could not serve and why.
type FailedProfile struct {
	ProfileID string `json:"profile_id"`
	Error     string `json:"error"`
}

// SyncResult aggregates one campaign metadata sync across a user's profiles.
type SyncResult struct {
	Success            bool                     `json:"success"`
	TotalProfiles      int                      `json:"total_profiles"`
	ProcessedProfiles  int                      `json:"processed_profiles"`
	TotalCampaigns     int                      `json:"total_campaigns"`
	CampaignsByProduct map[models.AdProduct]int `json:"campaigns_by_product"`
	FailedProfiles     []*FailedProfile         `json:"failed_profiles"`
	Message            string                   `json:"message"`
}
