package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/buffapp/adsync/pkg/config"
)

// Service drives the async report lifecycle: submit, reconcile duplicates,
// poll status, download/decode completed payloads and persist fact rows.
// All collaborators are injected so tests can substitute doubles.
type Service struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	store   Storage
	api     reportAPI
	conns   credentialSource
	objects objectStore
	metrics *Metrics
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, store Storage, api reportAPI, conns credentialSource, objects objectStore, metrics *Metrics) *Service {
	return &Service{cfg: cfg, log: log, store: store, api: api, conns: conns, objects: objects, metrics: metrics}
}

// ScanReports lists reports with admin filters (used by the admin API).
func (s *Service) ScanReports(ctx context.Context, req *ScanReportsRequest) (*ScanReportsResponse, error) {
	return s.store.ScanReports(ctx, req)
}
