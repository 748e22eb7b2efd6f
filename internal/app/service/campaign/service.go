package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/pkg/logctx"
)

const upsertBatchSize = 100

// Service mirrors campaign metadata from the Amazon campaign management
// endpoints into the campaigns table.
type Service struct {
	log     *zap.SugaredLogger
	store   Storage
	api     campaignAPI
	conns   credentialSource
	metrics *Metrics
}

func NewService(log *zap.SugaredLogger, store Storage, api campaignAPI, conns credentialSource, metrics *Metrics) *Service {
	return &Service{log: log, store: store, api: api, conns: conns, metrics: metrics}
}

// SyncUserCampaigns refreshes campaign metadata for every profile the user
// holds. Failures are isolated: a profile whose token cannot be refreshed is
// reported in FailedProfiles, and a single product listing failure leaves the
// remaining products syncing for that profile.
func (s *Service) SyncUserCampaigns(ctx context.Context, userID string) (*SyncResult, error) {
	log := logctx.FromCtx(ctx, s.log)

	conns, err := s.conns.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return nil, ErrNoConnections
	}

	res := &SyncResult{
		TotalProfiles:      len(conns),
		CampaignsByProduct: make(map[models.AdProduct]int, 3),
	}
	for _, p := range models.AllAdProducts() {
		res.CampaignsByProduct[p] = 0
	}

	for _, conn := range conns {
		token, err := s.conns.AccessToken(ctx, conn)
		if err != nil {
			log.Errorw("access token refresh failed",
				"profile_id", conn.ProfileID, "error", err)
			s.metrics.IncProfileFailed()
			res.FailedProfiles = append(res.FailedProfiles, &FailedProfile{
				ProfileID: conn.ProfileID,
				Error:     err.Error(),
			})
			continue
		}

		for _, p := range models.AllAdProducts() {
			saved, err := s.syncProduct(ctx, conn, token, p)
			if err != nil {
				log.Errorw("campaign listing failed",
					"profile_id", conn.ProfileID, "ad_product", p, "error", err)
				continue
			}
			res.CampaignsByProduct[p] += saved
			res.TotalCampaigns += saved
		}
		res.ProcessedProfiles++

		if err := s.conns.Touch(ctx, conn.ProfileID); err != nil {
			log.Warnw("connection sync timestamp not updated",
				"profile_id", conn.ProfileID, "error", err)
		}
	}

	if res.TotalCampaigns == 0 {
		res.Message = "no campaigns were synced"
		return res, nil
	}
	res.Success = true
	res.Message = fmt.Sprintf("%d campaigns synced from %d of %d profiles",
		res.TotalCampaigns, res.ProcessedProfiles, res.TotalProfiles)
	return res, nil
}

// syncProduct lists one product's campaigns and upserts them in batches.
// Batches are independent: a failed batch is logged and skipped.
func (s *Service) syncProduct(ctx context.Context, conn *models.Connection, token string, product models.AdProduct) (int, error) {
	var rows []map[string]any
	var err error
	switch product {
	case models.AdProductSponsoredProducts:
		rows, err = s.api.ListSPCampaigns(ctx, conn.ProfileID, token)
	case models.AdProductSponsoredBrands:
		rows, err = s.api.ListSBCampaigns(ctx, conn.ProfileID, token)
	case models.AdProductSponsoredDisplay:
		rows, err = s.api.ListSDCampaigns(ctx, conn.ProfileID, token)
	default:
		return 0, fmt.Errorf("unknown ad product %q", product)
	}
	if err != nil {
		return 0, err
	}

	log := logctx.FromCtx(ctx, s.log)
	now := time.Now()
	campaigns := make([]*models.Campaign, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		c, ok := campaignFromRow(conn.ProfileID, product, row, now)
		if !ok {
			dropped++
			continue
		}
		campaigns = append(campaigns, c)
	}
	if dropped > 0 {
		log.Warnw("campaigns without campaignId dropped",
			"profile_id", conn.ProfileID, "ad_product", product, "dropped", dropped)
	}

	saved := 0
	for _, chunk := range lo.Chunk(campaigns, upsertBatchSize) {
		if err := s.store.UpsertCampaigns(ctx, chunk); err != nil {
			log.Errorw("campaign batch upsert failed",
				"profile_id", conn.ProfileID, "ad_product", product,
				"batch_size", len(chunk), "error", err)
			continue
		}
		saved += len(chunk)
	}
	s.metrics.AddSynced(string(product), saved)
	return saved, nil
}
