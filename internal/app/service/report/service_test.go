package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/pkg/config"
)

// Test doubles for the service's collaborators.

type fakeStore struct {
	reports  map[string]*models.Report
	byCoords map[string]*models.Report

	coordinateUpserts []*models.Report
	idUpserts         []*models.Report
	fieldUpdates      map[string][]map[string]any

	spRows []*models.CampaignReportSP
	sbRows []*models.CampaignReportSB
	sdRows []*models.CampaignReportSD

	upsertSPErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reports:      make(map[string]*models.Report),
		byCoords:     make(map[string]*models.Report),
		fieldUpdates: make(map[string][]map[string]any),
	}
}

func (f *fakeStore) GetReport(_ context.Context, reportID string) (*models.Report, error) {
	r, ok := f.reports[reportID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
	}
	cp := *r
	return &cp, nil
}

// UpsertReportByCoordinates mirrors the coordinate-conflict semantics of the
// real storage: a fresh report id for already-used coordinates takes over the
// row, so the old id stops resolving.
func (f *fakeStore) UpsertReportByCoordinates(_ context.Context, r *models.Report) error {
	f.coordinateUpserts = append(f.coordinateUpserts, r)
	key := fmt.Sprintf("%s|%s|%s|%s|%s", r.ProfileID, r.AdProduct, r.StartDate, r.EndDate, r.ReportTypeID)
	if prev, ok := f.byCoords[key]; ok && prev.ReportID != r.ReportID {
		delete(f.reports, prev.ReportID)
	}
	f.byCoords[key] = r
	f.reports[r.ReportID] = r
	return nil
}

func (f *fakeStore) UpsertReportByID(_ context.Context, r *models.Report) error {
	f.idUpserts = append(f.idUpserts, r)
	f.reports[r.ReportID] = r
	return nil
}

func (f *fakeStore) UpdateReportFields(_ context.Context, reportID string, fields map[string]any) error {
	f.fieldUpdates[reportID] = append(f.fieldUpdates[reportID], fields)
	if r, ok := f.reports[reportID]; ok {
		if v, ok := fields["status"].(models.ReportStatus); ok {
			r.Status = v
		}
		if v, ok := fields["download_status"].(models.DownloadStatus); ok {
			r.DownloadStatus = v
		}
		if v, ok := fields["processed_status"].(models.ProcessedStatus); ok {
			r.ProcessedStatus = v
		}
		if v, ok := fields["storage_path"].(string); ok {
			r.StoragePath = &v
		}
	}
	return nil
}

func (f *fakeStore) ListPendingReports(_ context.Context, userID, profileID string, limit int) ([]*models.Report, error) {
	var out []*models.Report
	for _, r := range f.reports {
		if r.Status != models.ReportStatusPending || r.DownloadStatus != models.DownloadStatusPending {
			continue
		}
		if userID != "" && r.UserID != userID {
			continue
		}
		if profileID != "" && r.ProfileID != profileID {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) ScanReports(_ context.Context, _ *ScanReportsRequest) (*ScanReportsResponse, error) {
	return &ScanReportsResponse{}, nil
}

func (f *fakeStore) UpsertSPRows(_ context.Context, rows []*models.CampaignReportSP) error {
	if f.upsertSPErr != nil {
		return f.upsertSPErr
	}
	f.spRows = append(f.spRows, rows...)
	return nil
}

func (f *fakeStore) UpsertSBRows(_ context.Context, rows []*models.CampaignReportSB) error {
	f.sbRows = append(f.sbRows, rows...)
	return nil
}

func (f *fakeStore) UpsertSDRows(_ context.Context, rows []*models.CampaignReportSD) error {
	f.sdRows = append(f.sdRows, rows...)
	return nil
}

type fakeAPI struct {
	createFn   func(profileID string, req *adsapi.CreateReportRequest) (*adsapi.ReportResponse, error)
	getFn      func(reportID string) (*adsapi.ReportResponse, error)
	downloadFn func(url string) ([]byte, error)

	createCalls   int
	getCalls      int
	downloadCalls int
}

func (f *fakeAPI) CreateReport(_ context.Context, profileID, _ string, req *adsapi.CreateReportRequest) (*adsapi.ReportResponse, error) {
	f.createCalls++
	return f.createFn(profileID, req)
}

func (f *fakeAPI) GetReport(_ context.Context, _, _, reportID string) (*adsapi.ReportResponse, error) {
	f.getCalls++
	return f.getFn(reportID)
}

func (f *fakeAPI) DownloadReport(_ context.Context, url string) ([]byte, error) {
	f.downloadCalls++
	return f.downloadFn(url)
}

type fakeConns struct {
	byProfile map[string]*models.Connection
	byUser    map[string][]*models.Connection
	tokenErrs map[string]error
}

func newFakeConns(conns ...*models.Connection) *fakeConns {
	f := &fakeConns{
		byProfile: make(map[string]*models.Connection),
		byUser:    make(map[string][]*models.Connection),
		tokenErrs: make(map[string]error),
	}
	for _, c := range conns {
		f.byProfile[c.ProfileID] = c
		f.byUser[c.UserID] = append(f.byUser[c.UserID], c)
	}
	return f
}

func (f *fakeConns) GetByProfileID(_ context.Context, profileID string) (*models.Connection, error) {
	c, ok := f.byProfile[profileID]
	if !ok {
		return nil, fmt.Errorf("connection not found: %s", profileID)
	}
	return c, nil
}

func (f *fakeConns) ListByUserID(_ context.Context, userID string) ([]*models.Connection, error) {
	return f.byUser[userID], nil
}

func (f *fakeConns) AccessToken(_ context.Context, conn *models.Connection) (string, error) {
	if err := f.tokenErrs[conn.ProfileID]; err != nil {
		return "", err
	}
	return "token-" + conn.ProfileID, nil
}

type fakeObjects struct {
	puts   map[string][]byte
	putErr error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{puts: make(map[string][]byte)}
}

func (f *fakeObjects) Put(_ context.Context, key, _ string, body []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts[key] = body
	return nil
}

func newTestService(store *fakeStore, api *fakeAPI, conns *fakeConns, objects *fakeObjects) *Service {
	cfg := &config.Config{}
	cfg.AmazonAds.SupportedCountry = "US"
	return NewService(cfg, zap.NewNop().Sugar(), store, api, conns, objects, nil)
}
