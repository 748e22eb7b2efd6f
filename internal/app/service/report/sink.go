package report

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/pkg/logctx"
)

const upsertBatchSize = 200

// sinkRows dispatches decoded payload rows into the fact table for the
// report's ad product. Batches are independent: a failed batch is logged and
// skipped so one bad chunk cannot discard the rest of the payload. Returns the
// number of rows written.
func (s *Service) sinkRows(ctx context.Context, rec *models.Report, rows []map[string]any) (int, error) {
	prepared, dropped := prepareRows(rows)
	if dropped > 0 {
		logctx.FromCtx(ctx, s.log).Warnw("rows without campaignId dropped",
			"report_id", rec.ReportID, "dropped", dropped)
	}
	if len(prepared) == 0 {
		return 0, nil
	}

	var written int
	switch rec.AdProduct {
	case models.AdProductSponsoredProducts:
		for _, chunk := range lo.Chunk(prepared, upsertBatchSize) {
			typed, err := buildTypedRows[models.CampaignReportSP](chunk, rec)
			if err == nil {
				err = s.store.UpsertSPRows(ctx, typed)
			}
			written += s.countBatch(ctx, rec, len(chunk), err)
		}
	case models.AdProductSponsoredBrands:
		for _, chunk := range lo.Chunk(prepared, upsertBatchSize) {
			typed, err := buildTypedRows[models.CampaignReportSB](chunk, rec)
			if err == nil {
				err = s.store.UpsertSBRows(ctx, typed)
			}
			written += s.countBatch(ctx, rec, len(chunk), err)
		}
	case models.AdProductSponsoredDisplay:
		for _, chunk := range lo.Chunk(prepared, upsertBatchSize) {
			typed, err := buildTypedRows[models.CampaignReportSD](chunk, rec)
			if err == nil {
				err = s.store.UpsertSDRows(ctx, typed)
			}
			written += s.countBatch(ctx, rec, len(chunk), err)
		}
	default:
		return 0, fmt.Errorf("no fact table for ad product %q", rec.AdProduct)
	}

	s.metrics.AddRowsUpserted(string(rec.AdProduct), written)
	return written, nil
}

func (s *Service) countBatch(ctx context.Context, rec *models.Report, size int, err error) int {
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("fact batch upsert failed",
			"report_id", rec.ReportID, "ad_product", rec.AdProduct, "batch_size", size, "error", err)
		return 0
	}
	return size
}

// prepareRows filters out rows without a campaignId and normalizes the id to
// a string. The decoder keeps numbers as json.Number, so stringifying here
// preserves 64-bit IDs exactly.
func prepareRows(rows []map[string]any) ([]map[string]any, int) {
	prepared := make([]map[string]any, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		id, ok := campaignIDString(row["campaignId"])
		if !ok {
			dropped++
			continue
		}
		out := make(map[string]any, len(row))
		for k, v := range row {
			out[k] = v
		}
		out["campaignId"] = id
		prepared = append(prepared, out)
	}
	return prepared, dropped
}

func campaignIDString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case json.Number:
		return id.String(), id.String() != ""
	default:
		return "", false
	}
}

// buildTypedRows remarshals the normalized maps into the typed fact struct and
// stamps the report coordinates onto each row.
func buildTypedRows[T any](chunk []map[string]any, rec *models.Report) ([]*T, error) {
	raw, err := json.Marshal(chunk)
	if err != nil {
		return nil, fmt.Errorf("failed to remarshal report rows: %w", err)
	}
	var typed []*T
	if err := json.Unmarshal(raw, &typed); err != nil {
		return nil, fmt.Errorf("failed to decode report rows: %w", err)
	}
	for _, t := range typed {
		stampRow(t, rec)
	}
	return typed, nil
}

func stampRow(row any, rec *models.Report) {
	switch r := row.(type) {
	case *models.CampaignReportSP:
		r.ReportID = rec.ReportID
		r.ProfileID = rec.ProfileID
		r.UserID = rec.UserID
	case *models.CampaignReportSB:
		r.ReportID = rec.ReportID
		r.ProfileID = rec.ProfileID
		r.UserID = rec.UserID
	case *models.CampaignReportSD:
		r.ReportID = rec.ReportID
		r.ProfileID = rec.ProfileID
		r.UserID = rec.UserID
	}
}
