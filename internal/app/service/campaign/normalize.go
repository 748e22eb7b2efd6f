package campaign

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/pkg/tool"
)

// sdFieldAliases maps the lowercase field names the Sponsored Display v2
// endpoint emits to their canonical names.
var sdFieldAliases = map[string]string{
	"budgettype":  "budgetType",
	"costtype":    "costType",
	"portfolioid": "portfolioId",
}

// liftedFields are extracted into dedicated columns; everything else stays in
// Settings.
var liftedFields = map[string]struct{}{
	"campaignId": {}, "name": {}, "state": {}, "startDate": {},
	"budget": {}, "budgetType": {}, "costType": {}, "portfolioId": {},
}

// campaignFromRow normalizes one raw campaign row into a model. Rows without
// a campaignId are rejected. Campaign ids arrive as json.Number or string;
// stringifying preserves 64-bit ids exactly.
func campaignFromRow(profileID string, product models.AdProduct, row map[string]any, syncedAt time.Time) (*models.Campaign, bool) {
	normalized := make(map[string]any, len(row))
	for k, v := range row {
		if alias, ok := sdFieldAliases[k]; ok && product == models.AdProductSponsoredDisplay {
			if _, exists := row[alias]; !exists {
				normalized[alias] = v
			}
			continue
		}
		normalized[k] = v
	}

	id, ok := idString(normalized["campaignId"])
	if !ok {
		return nil, false
	}

	c := &models.Campaign{
		ID:           tool.GenerateUUIDV7(),
		ProfileID:    profileID,
		AdProduct:    product,
		CampaignID:   id,
		Name:         stringValue(normalized["name"]),
		State:        strings.ToUpper(stringValue(normalized["state"])),
		LastSyncedAt: syncedAt,
	}

	if raw := stringValue(normalized["startDate"]); raw != "" {
		d := raw
		// SD reports dates as YYYYMMDD.
		if product == models.AdProductSponsoredDisplay && len(raw) == 8 {
			d = raw[:4] + "-" + raw[4:6] + "-" + raw[6:8]
		}
		c.StartDate = &d
	}

	// SP nests the budget; SB and SD keep it flat.
	if product == models.AdProductSponsoredProducts {
		if b, ok := normalized["budget"].(map[string]any); ok {
			c.Budget = floatValue(b["budget"])
			c.BudgetType = stringPtr(b["budgetType"])
		}
	} else {
		c.Budget = floatValue(normalized["budget"])
		c.BudgetType = stringPtr(normalized["budgetType"])
	}
	c.CostType = stringPtr(normalized["costType"])
	c.PortfolioID = stringPtr(normalized["portfolioId"])

	settings := make(map[string]any, len(normalized))
	for k, v := range normalized {
		if _, lifted := liftedFields[k]; lifted {
			continue
		}
		settings[k] = v
	}
	if len(settings) > 0 {
		if raw, err := json.Marshal(settings); err == nil {
			c.Settings = datatypes.JSON(raw)
		}
	}
	return c, true
}

func idString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case json.Number:
		return id.String(), id.String() != ""
	default:
		return "", false
	}
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringPtr(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func floatValue(v any) *float64 {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil
		}
		return &f
	case float64:
		return &n
	default:
		return nil
	}
}
