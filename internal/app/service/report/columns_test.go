package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/buffapp/adsync/internal/models"
)

func TestColumnsFor_CoreFieldsPresent(t *testing.T) {
	sp := columnsFor(models.AdProductSponsoredProducts)
	for _, col := range []string{"campaignId", "date", "impressions", "clicks", "cost", "purchases7d", "sales7d"} {
		require.Contains(t, sp, col)
	}

	for _, p := range []models.AdProduct{models.AdProductSponsoredBrands, models.AdProductSponsoredDisplay} {
		cols := columnsFor(p)
		for _, col := range []string{"campaignId", "date", "impressions", "clicks", "cost", "purchases", "sales"} {
			require.Contains(t, cols, col, "product %s", p)
		}
	}
}

func TestColumnsFor_UnknownProduct(t *testing.T) {
	require.Nil(t, columnsFor(models.AdProduct("SPONSORED_TELEVISION")))
}

func TestBuildCreateRequest(t *testing.T) {
	req := buildCreateRequest(models.AdProductSponsoredProducts, "2025-05-01", "2025-05-07")

	require.Equal(t, "2025-05-01", req.StartDate)
	require.Equal(t, "2025-05-07", req.EndDate)
	require.Equal(t, "spCampaigns", req.Configuration.ReportTypeID)
	require.Equal(t, []string{"campaign"}, req.Configuration.GroupBy)
	require.Equal(t, timeUnitDaily, req.Configuration.TimeUnit)
	require.Equal(t, formatGzipJSON, req.Configuration.Format)
}

func TestDefaultDateRange(t *testing.T) {
	start, end := defaultDateRange("", "")
	require.Len(t, start, 10)
	require.Len(t, end, 10)
	require.Less(t, start, end)

	start, end = defaultDateRange("2025-01-01", "2025-01-31")
	require.Equal(t, "2025-01-01", start)
	require.Equal(t, "2025-01-31", end)
}
