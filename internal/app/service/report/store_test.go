package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
)

func TestUpsertColumnSets(t *testing.T) {
	// A coordinate conflict means Amazon issued a fresh id for known
	// coordinates: the row must adopt it and drop the stale payload path.
	require.Contains(t, reportCoordinateUpdateColumns, "report_id")
	require.Contains(t, reportCoordinateUpdateColumns, "storage_path")

	// Upserts keyed by report id mirror status only; they must never null
	// out an archived payload path or rewrite the key itself.
	require.NotContains(t, reportUpdateColumns, "report_id")
	require.NotContains(t, reportUpdateColumns, "storage_path")
}

func TestCreateReport_FreshIDReplacesRowForSameCoordinates(t *testing.T) {
	store := newFakeStore()
	ids := []string{"r-old", "r-new"}
	api := &fakeAPI{
		createFn: func(string, *adsapi.CreateReportRequest) (*adsapi.ReportResponse, error) {
			id := ids[0]
			ids = ids[1:]
			return &adsapi.ReportResponse{ReportID: id, Status: "PENDING"}, nil
		},
	}
	svc := newTestService(store, api, newFakeConns(), newFakeObjects())

	_, err := svc.CreateReport(context.Background(), "profile-1", "tok",
		models.AdProductSponsoredProducts, "2025-05-01", "2025-05-07", "user-1")
	require.NoError(t, err)

	_, err = svc.CreateReport(context.Background(), "profile-1", "tok",
		models.AdProductSponsoredProducts, "2025-05-01", "2025-05-07", "user-1")
	require.NoError(t, err)
	require.Len(t, store.coordinateUpserts, 2)

	_, err = store.GetReport(context.Background(), "r-old")
	require.True(t, errors.Is(err, ErrReportNotFound))

	rec, err := store.GetReport(context.Background(), "r-new")
	require.NoError(t, err)
	require.Equal(t, models.ReportStatusPending, rec.Status)
	require.Equal(t, models.DownloadStatusPending, rec.DownloadStatus)
	require.Nil(t, rec.StoragePath)
}
