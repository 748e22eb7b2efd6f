package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportDownloaded(t *testing.T) {
	var nilReport *Report
	require.False(t, nilReport.Downloaded())

	r := &Report{DownloadStatus: DownloadStatusCompleted}
	require.False(t, r.Downloaded(), "completed without storage path is not downloaded")

	path := "reports/u/p/SPONSORED_PRODUCTS/r.json"
	r.StoragePath = &path
	require.True(t, r.Downloaded())

	r.DownloadStatus = DownloadStatusPending
	require.False(t, r.Downloaded())
}

func TestAdProductValid(t *testing.T) {
	for _, p := range AllAdProducts() {
		require.True(t, p.Valid())
		require.NotEmpty(t, p.ReportTypeID())
	}
	require.False(t, AdProduct("SPONSORED_TV").Valid())
	require.Empty(t, AdProduct("SPONSORED_TV").ReportTypeID())
}
