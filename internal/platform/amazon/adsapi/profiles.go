package adsapi

import (
	"context"
	"net/http"
)

// Profile is one advertiser account as returned by GET /v2/profiles.
type Profile struct {
	ProfileID    int64  `json:"profileId"`
	CountryCode  string `json:"countryCode"`
	CurrencyCode string `json:"currencyCode"`
	Timezone     string `json:"timezone"`
	AccountInfo  struct {
		MarketplaceStringID string `json:"marketplaceStringId"`
		Name                string `json:"name"`
		Type                string `json:"type"`
	} `json:"accountInfo"`
}

// ListProfiles returns the advertiser profiles visible to the token.
func (c *Client) ListProfiles(ctx context.Context, accessToken string) ([]Profile, error) {
	var profiles []Profile
	err := c.doJSON(ctx, http.MethodGet, c.apiHost+"/v2/profiles", c.apiHeaders(accessToken, ""), nil, &profiles)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
