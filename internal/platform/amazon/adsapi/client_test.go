package adsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/buffapp/adsync/pkg/config"
)

func testClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.AmazonAds.ClientID = "client-id"
	cfg.AmazonAds.ClientSecret = "client-secret"
	cfg.AmazonAds.APIHost = srv.URL
	cfg.AmazonAds.TokenHost = srv.URL + "/auth/o2/token"
	cfg.AmazonAds.AuthHost = srv.URL + "/ap/oa"
	return NewClient(cfg, zap.NewNop().Sugar())
}

func TestCreateReport_SetsRequiredHeaders(t *testing.T) {
	var gotScope, gotClientID, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotScope = r.Header.Get("Amazon-Advertising-API-Scope")
		gotClientID = r.Header.Get("Amazon-Advertising-API-ClientId")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"reportId":"r-1","status":"PENDING"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv)
	resp, err := c.CreateReport(context.Background(), "profile-1", "token", &CreateReportRequest{})
	require.NoError(t, err)
	require.Equal(t, "r-1", resp.ReportID)
	require.Equal(t, "profile-1", gotScope)
	require.Equal(t, "client-id", gotClientID)
	require.Equal(t, reportContentType, gotContentType)
}

func TestCreateReport_DuplicateMapsToTaggedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooEarly)
		w.Write([]byte(`{"detail":"Report is duplicate of : existing-report-id"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv)
	_, err := c.CreateReport(context.Background(), "p", "t", &CreateReportRequest{})

	var dup *DuplicateReportError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "existing-report-id", dup.DuplicateReportID)
}

func TestCreateReport_BadRequestMapsToInvalidRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"columns invalid"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv)
	_, err := c.CreateReport(context.Background(), "p", "t", &CreateReportRequest{})

	var bad *InvalidRequestError
	require.True(t, errors.As(err, &bad))
}

func TestGetReport_ServerErrorMapsToAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(t, srv)
	_, err := c.GetReport(context.Background(), "p", "t", "r-1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestListSPCampaigns_SetsVersionedHeaders(t *testing.T) {
	var gotMethod, gotPath, gotContentType, gotAccept, gotScope string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		gotScope = r.Header.Get("Amazon-Advertising-API-Scope")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"campaigns":[{"campaignId":288230376151711744,"name":"C1","state":"enabled"}]}`))
	}))
	defer srv.Close()

	c := testClient(t, srv)
	rows, err := c.ListSPCampaigns(context.Background(), "profile-1", "token")
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/sp/campaigns/list", gotPath)
	require.Equal(t, spCampaignContentType, gotContentType)
	require.Equal(t, spCampaignContentType, gotAccept)
	require.Equal(t, "profile-1", gotScope)
	require.JSONEq(t, `{}`, string(gotBody))

	require.Len(t, rows, 1)
	// Numbers stay as json.Number so 64-bit campaign ids survive.
	require.Equal(t, json.Number("288230376151711744"), rows[0]["campaignId"])
}

func TestListSBCampaigns_SetsVersionedAccept(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"campaigns":[{"campaignId":"42","name":"B1"}]}`))
	}))
	defer srv.Close()

	c := testClient(t, srv)
	rows, err := c.ListSBCampaigns(context.Background(), "profile-1", "token")
	require.NoError(t, err)
	require.Equal(t, "/sb/v4/campaigns/list", gotPath)
	require.Equal(t, sbCampaignAcceptType, gotAccept)
	require.Len(t, rows, 1)
	require.Equal(t, "42", rows[0]["campaignId"])
}

func TestListSDCampaigns_DecodesBareArray(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`[{"campaignId":77,"budgettype":"daily","startDate":"20250501"}]`))
	}))
	defer srv.Close()

	c := testClient(t, srv)
	rows, err := c.ListSDCampaigns(context.Background(), "profile-1", "token")
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, gotMethod)
	require.Equal(t, "/sd/campaigns", gotPath)
	require.Len(t, rows, 1)
	require.Equal(t, json.Number("77"), rows[0]["campaignId"])
}

func TestParseReportTime(t *testing.T) {
	ts := ParseReportTime("2025-05-01T12:00:00Z")
	require.NotNil(t, ts)
	require.Equal(t, 2025, ts.Year())

	require.Nil(t, ParseReportTime(""))
	require.Nil(t, ParseReportTime("not a time"))
}
