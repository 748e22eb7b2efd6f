package report

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestDecodePayload_RowArray(t *testing.T) {
	payload := gzipBytes(t, `[{"campaignId":123,"date":"2025-05-01"},{"campaignId":456,"date":"2025-05-02"}]`)

	rows, err := decodePayload(payload)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "2025-05-01", rows[0]["date"])
}

func TestDecodePayload_RowsObject(t *testing.T) {
	payload := gzipBytes(t, `{"rows":[{"campaignId":1}]}`)

	rows, err := decodePayload(payload)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestDecodePayload_PreservesBigCampaignIDs(t *testing.T) {
	// 64-bit campaign ids exceed float64's 53-bit mantissa and would be
	// corrupted by a plain interface{} decode.
	payload := gzipBytes(t, `[{"campaignId":288230376151711744}]`)

	rows, err := decodePayload(payload)
	require.NoError(t, err)

	num, ok := rows[0]["campaignId"].(json.Number)
	require.True(t, ok)
	require.Equal(t, "288230376151711744", num.String())
}

func TestDecodePayload_NotGzip(t *testing.T) {
	_, err := decodePayload([]byte(`[{"campaignId":1}]`))
	require.Error(t, err)
}

func TestDecodeRows_UnknownShape(t *testing.T) {
	_, err := decodeRows([]byte(`{"data":[1,2,3]}`))
	require.Error(t, err)

	_, err = decodeRows([]byte(`"just a string"`))
	require.Error(t, err)
}
