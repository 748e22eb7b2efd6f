package report

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
)

// decompressPayload unpacks a gzip report payload into raw JSON bytes.
func decompressPayload(payload []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip payload: %w", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress report payload: %w", err)
	}
	return raw, nil
}

// decodePayload decompresses a gzip report payload and decodes its JSON rows.
// Amazon ships either a bare JSON array or an object wrapping the array under
// "rows". Numbers are kept as json.Number so 64-bit campaign IDs survive the
// trip without float rounding.
func decodePayload(payload []byte) ([]map[string]any, error) {
	raw, err := decompressPayload(payload)
	if err != nil {
		return nil, err
	}
	return decodeRows(raw)
}

func decodeRows(raw []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var direct []map[string]any
	if err := dec.Decode(&direct); err == nil {
		return direct, nil
	}

	dec = json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var wrapped struct {
		Rows []map[string]any `json:"rows"`
	}
	if err := dec.Decode(&wrapped); err != nil {
		return nil, fmt.Errorf("report payload is neither a row array nor a rows object: %w", err)
	}
	if wrapped.Rows == nil {
		return nil, fmt.Errorf("report payload object carries no rows field")
	}
	return wrapped.Rows, nil
}
