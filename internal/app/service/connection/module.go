package connection

import "go.uber.org/fx"

// Module exposes the connection service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
