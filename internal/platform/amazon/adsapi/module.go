package adsapi

import "go.uber.org/fx"

// Module exposes the Amazon Ads API client via Fx.
var Module = fx.Options(
	fx.Provide(NewClient),
)
