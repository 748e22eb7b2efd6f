package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/buffapp/adsync/internal/models"
)

func TestPrepareRows_DropsRowsWithoutCampaignID(t *testing.T) {
	rows := []map[string]any{
		{"campaignId": json.Number("111"), "date": "2025-05-01"},
		{"date": "2025-05-01"},
		{"campaignId": "", "date": "2025-05-01"},
	}

	prepared, dropped := prepareRows(rows)
	require.Len(t, prepared, 1)
	require.Equal(t, 2, dropped)
	require.Equal(t, "111", prepared[0]["campaignId"])
}

func TestPrepareRows_StringifiesNumericIDs(t *testing.T) {
	rows := []map[string]any{
		{"campaignId": json.Number("288230376151711744")},
		{"campaignId": "already-string"},
	}

	prepared, dropped := prepareRows(rows)
	require.Zero(t, dropped)
	require.Equal(t, "288230376151711744", prepared[0]["campaignId"])
	require.Equal(t, "already-string", prepared[1]["campaignId"])
}

func TestPrepareRows_DoesNotMutateInput(t *testing.T) {
	rows := []map[string]any{{"campaignId": json.Number("42")}}

	_, _ = prepareRows(rows)
	_, stillNumber := rows[0]["campaignId"].(json.Number)
	require.True(t, stillNumber)
}

func TestBuildTypedRows_StampsReportCoordinates(t *testing.T) {
	rec := &models.Report{ReportID: "r-1", ProfileID: "p-1", UserID: "u-1"}
	chunk := []map[string]any{
		{"campaignId": "222", "campaignName": "Brand push", "date": "2025-05-01", "impressions": json.Number("1000"), "sales7d": json.Number("99.5")},
	}

	typed, err := buildTypedRows[models.CampaignReportSP](chunk, rec)
	require.NoError(t, err)
	require.Len(t, typed, 1)
	require.Equal(t, "r-1", typed[0].ReportID)
	require.Equal(t, "p-1", typed[0].ProfileID)
	require.Equal(t, "u-1", typed[0].UserID)
	require.Equal(t, "222", typed[0].CampaignID)
	require.Equal(t, int64(1000), typed[0].Impressions)
	require.Equal(t, 99.5, typed[0].Sales7d)
}
