package adsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	spCampaignContentType = "application/vnd.spCampaign.v3+json"
	sbCampaignAcceptType  = "application/vnd.sbcampaignresource.v4+json"
)

// Campaign payloads differ per ad product and API generation, so listings
// return raw maps with numbers preserved as json.Number. Normalization is the
// caller's concern.

type campaignListResponse struct {
	Campaigns json.RawMessage `json:"campaigns"`
}

// ListSPCampaigns lists Sponsored Products campaigns via the v3 list endpoint.
func (c *Client) ListSPCampaigns(ctx context.Context, profileID, accessToken string) ([]map[string]any, error) {
	headers := c.apiHeaders(accessToken, profileID)
	headers["Content-Type"] = spCampaignContentType
	headers["Accept"] = spCampaignContentType

	var resp campaignListResponse
	if err := c.doJSON(ctx, http.MethodPost, c.apiHost+"/sp/campaigns/list", headers, map[string]any{}, &resp); err != nil {
		return nil, err
	}
	return decodeCampaignRows(resp.Campaigns)
}

// ListSBCampaigns lists Sponsored Brands campaigns via the v4 list endpoint.
func (c *Client) ListSBCampaigns(ctx context.Context, profileID, accessToken string) ([]map[string]any, error) {
	headers := c.apiHeaders(accessToken, profileID)
	headers["Accept"] = sbCampaignAcceptType

	var resp campaignListResponse
	if err := c.doJSON(ctx, http.MethodPost, c.apiHost+"/sb/v4/campaigns/list", headers, map[string]any{}, &resp); err != nil {
		return nil, err
	}
	return decodeCampaignRows(resp.Campaigns)
}

// ListSDCampaigns lists Sponsored Display campaigns. The v2 endpoint returns
// a bare array.
func (c *Client) ListSDCampaigns(ctx context.Context, profileID, accessToken string) ([]map[string]any, error) {
	var resp json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, c.apiHost+"/sd/campaigns", c.apiHeaders(accessToken, profileID), nil, &resp); err != nil {
		return nil, err
	}
	return decodeCampaignRows(resp)
}

// decodeCampaignRows keeps numbers as json.Number so 64-bit campaign ids
// survive the trip through map[string]any.
func decodeCampaignRows(raw json.RawMessage) ([]map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to parse campaign list: %w", err)
	}
	return rows, nil
}
