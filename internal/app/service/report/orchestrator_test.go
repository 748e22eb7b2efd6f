package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
)

func usConn(userID, profileID string) *models.Connection {
	return &models.Connection{UserID: userID, ProfileID: profileID, CountryCode: "US"}
}

func createOK(profileID string, req *adsapi.CreateReportRequest) (*adsapi.ReportResponse, error) {
	return &adsapi.ReportResponse{
		ReportID:  "r-" + profileID + "-" + req.Configuration.ReportTypeID,
		Status:    "PENDING",
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, nil
}

func TestCreateReportsForProfiles_AllProductsPerProfile(t *testing.T) {
	store := newFakeStore()
	api := &fakeAPI{createFn: createOK}
	conns := newFakeConns()
	svc := newTestService(store, api, conns, newFakeObjects())

	res, err := svc.CreateReportsForProfiles(context.Background(),
		[]*models.Connection{usConn("u", "p1"), usConn("u", "p2")}, nil, "2025-05-01", "2025-05-07")
	require.NoError(t, err)

	require.True(t, res.Success)
	require.Equal(t, 2, res.TotalProfiles)
	require.Equal(t, 2, res.ProcessedProfiles)
	require.Equal(t, 6, res.CreatedReports)
	require.Len(t, res.Details, 3)
	require.Equal(t, 2, res.Details[models.AdProductSponsoredProducts].CreatedReports)
	require.Len(t, store.coordinateUpserts, 6)
}

func TestCreateReportsForProfiles_SkipsUnsupportedMarketplace(t *testing.T) {
	api := &fakeAPI{createFn: createOK}
	svc := newTestService(newFakeStore(), api, newFakeConns(), newFakeObjects())

	ca := usConn("u", "p-ca")
	ca.CountryCode = "CA"

	res, err := svc.CreateReportsForProfiles(context.Background(),
		[]*models.Connection{ca, usConn("u", "p-us")}, []models.AdProduct{models.AdProductSponsoredProducts}, "", "")
	require.NoError(t, err)

	require.Equal(t, 1, res.TotalProfiles)
	require.Equal(t, 1, res.ProcessedProfiles)
	require.Empty(t, res.FailedProfiles)
	require.Equal(t, 1, api.createCalls)
}

func TestCreateReportsForProfiles_IsolatesTokenFailure(t *testing.T) {
	api := &fakeAPI{createFn: createOK}
	conns := newFakeConns()
	conns.tokenErrs["p-broken"] = errors.New("refresh rejected")
	svc := newTestService(newFakeStore(), api, conns, newFakeObjects())

	res, err := svc.CreateReportsForProfiles(context.Background(),
		[]*models.Connection{usConn("u", "p-broken"), usConn("u", "p-ok")},
		[]models.AdProduct{models.AdProductSponsoredProducts}, "", "")
	require.NoError(t, err)

	require.True(t, res.Success)
	require.Equal(t, 2, res.TotalProfiles)
	require.Equal(t, 1, res.ProcessedProfiles)
	require.Equal(t, []string{"p-broken"}, res.FailedProfiles)

	detail := res.Details[models.AdProductSponsoredProducts]
	require.False(t, detail.Success)
	require.Equal(t, []string{"p-broken"}, detail.FailedProfiles)
	require.Equal(t, 1, detail.CreatedReports)
}

func TestCreateReportsForProfiles_IsolatesProductFailure(t *testing.T) {
	api := &fakeAPI{
		createFn: func(profileID string, req *adsapi.CreateReportRequest) (*adsapi.ReportResponse, error) {
			if req.Configuration.ReportTypeID == "sbCampaigns" {
				return nil, &adsapi.InvalidRequestError{Body: "sb not enabled"}
			}
			return createOK(profileID, req)
		},
	}
	svc := newTestService(newFakeStore(), api, newFakeConns(), newFakeObjects())

	res, err := svc.CreateReportsForProfiles(context.Background(),
		[]*models.Connection{usConn("u", "p1")}, nil, "", "")
	require.NoError(t, err)

	// Two of three products succeeded, so the profile counts as processed.
	require.Equal(t, 1, res.ProcessedProfiles)
	require.Equal(t, 2, res.CreatedReports)
	require.False(t, res.Details[models.AdProductSponsoredBrands].Success)
	require.True(t, res.Details[models.AdProductSponsoredProducts].Success)
}

func TestCreateReportsForProfiles_DuplicateCountsAsCreated(t *testing.T) {
	store := newFakeStore()
	existing := pendingReport("r-existing")
	store.reports["r-existing"] = existing

	api := &fakeAPI{
		createFn: func(string, *adsapi.CreateReportRequest) (*adsapi.ReportResponse, error) {
			return nil, &adsapi.DuplicateReportError{DuplicateReportID: "r-existing"}
		},
	}
	svc := newTestService(store, api, newFakeConns(), newFakeObjects())

	res, err := svc.CreateReportsForProfiles(context.Background(),
		[]*models.Connection{usConn("u", "profile-1")},
		[]models.AdProduct{models.AdProductSponsoredProducts}, "", "")
	require.NoError(t, err)

	require.Equal(t, 1, res.CreatedReports)
	require.Equal(t, 1, res.ProcessedProfiles)
	require.Empty(t, res.FailedProfiles)
	require.Zero(t, api.getCalls, "known duplicate must not trigger a status poll")
}

func TestSyncUserReports_NoConnections(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeAPI{}, newFakeConns(), newFakeObjects())

	_, err := svc.SyncUserReports(context.Background(), "ghost", nil, "", "")
	require.True(t, errors.Is(err, ErrNoConnections))
}

func TestSyncProfileReports_SingleProfile(t *testing.T) {
	api := &fakeAPI{createFn: createOK}
	conns := newFakeConns(usConn("u", "p1"))
	svc := newTestService(newFakeStore(), api, conns, newFakeObjects())

	res, err := svc.SyncProfileReports(context.Background(), "p1",
		[]models.AdProduct{models.AdProductSponsoredDisplay}, "", "")
	require.NoError(t, err)
	require.Equal(t, 1, res.CreatedReports)
}

func TestProcessMultipleReports_ScopedNoMatchErrs(t *testing.T) {
	store := newFakeStore()
	store.reports["r-1"] = pendingReport("r-1") // user-1 / profile-1
	svc := newTestService(store, &fakeAPI{}, newFakeConns(), newFakeObjects())

	_, err := svc.ProcessMultipleReports(context.Background(), "ghost-user", "", 0)
	require.True(t, errors.Is(err, ErrNoMatchingReports))

	_, err = svc.ProcessMultipleReports(context.Background(), "", "ghost-profile", 0)
	require.True(t, errors.Is(err, ErrNoMatchingReports))
}

func TestProcessMultipleReports_UnscopedEmptyIsNormalRun(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeAPI{}, newFakeConns(), newFakeObjects())

	res, err := svc.ProcessMultipleReports(context.Background(), "", "", 0)
	require.NoError(t, err)
	require.Zero(t, res.TotalReports)
	require.Zero(t, res.FailedReports)
}

func TestProcessMultipleReports_CountsOutcomes(t *testing.T) {
	store := newFakeStore()
	store.reports["r-done"] = pendingReport("r-done")
	conn := usConn("user-1", "profile-1")

	payload := gzipBytes(t, `[{"campaignId":1,"date":"2025-05-01"}]`)
	api := &fakeAPI{
		getFn: func(string) (*adsapi.ReportResponse, error) {
			return &adsapi.ReportResponse{ReportID: "r-done", Status: "COMPLETED", URL: strPtr("https://signed.example/x")}, nil
		},
		downloadFn: func(string) ([]byte, error) { return payload, nil },
	}
	svc := newTestService(store, api, newFakeConns(conn), newFakeObjects())

	res, err := svc.ProcessMultipleReports(context.Background(), "", "", 0)
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalReports)
	require.Equal(t, 1, res.ProcessedReports)
	require.Zero(t, res.FailedReports)
	require.Len(t, res.Details, 1)
}
