package adsapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractDuplicateReportID(t *testing.T) {
	body := []byte(`{"detail":"Report is duplicate of : abc-123"}`)
	require.Equal(t, "abc-123", extractDuplicateReportID(body))
}

func TestExtractDuplicateReportID_NoMarker(t *testing.T) {
	require.Equal(t, "", extractDuplicateReportID([]byte(`{"detail":"something else"}`)))
	require.Equal(t, "", extractDuplicateReportID([]byte("not json")))
}

func TestExtractDuplicateReportID_TrailingWhitespace(t *testing.T) {
	body := []byte(`{"detail":"duplicate of :   id-with-spaces  "}`)
	require.Equal(t, "id-with-spaces", extractDuplicateReportID(body))
}

func TestDuplicateReportError_IsTagged(t *testing.T) {
	err := fmt.Errorf("create report: %w", &DuplicateReportError{DuplicateReportID: "r-1"})

	var dup *DuplicateReportError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "r-1", dup.DuplicateReportID)
}
