package campaign

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/buffapp/adsync/internal/app/service/connection"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
)

// Module exposes the campaign sync service via Fx. The concrete Amazon client
// and connection service satisfy the service's narrow interfaces.
var Module = fx.Options(
	fx.Provide(NewStorage),
	fx.Provide(NewMetrics),
	fx.Provide(func(log *zap.SugaredLogger, store Storage, api *adsapi.Client, conns *connection.Service, metrics *Metrics) *Service {
		return NewService(log, store, api, conns, metrics)
	}),
)
