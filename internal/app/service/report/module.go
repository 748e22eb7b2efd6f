package report

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/buffapp/adsync/internal/app/service/connection"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/internal/platform/objstore"
	"github.com/buffapp/adsync/pkg/config"
)

// Module exposes the report service via Fx. The concrete Amazon client,
// connection service and object store satisfy the service's narrow interfaces.
var Module = fx.Options(
	fx.Provide(NewStorage),
	fx.Provide(NewMetrics),
	fx.Provide(func(cfg *config.Config, log *zap.SugaredLogger, store Storage, api *adsapi.Client, conns *connection.Service, objects *objstore.Store, metrics *Metrics) *Service {
		return NewService(cfg, log, store, api, conns, objects, metrics)
	}),
)
