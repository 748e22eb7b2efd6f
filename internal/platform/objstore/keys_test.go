package objstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReportKey(t *testing.T) {
	key := ReportKey("user-1", "profile-9", "SPONSORED_PRODUCTS", "r-42")
	require.Equal(t, "reports/user-1/profile-9/SPONSORED_PRODUCTS/r-42.json", key)
}
