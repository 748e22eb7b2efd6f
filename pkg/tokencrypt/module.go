package tokencrypt

import (
	"go.uber.org/fx"

	"github.com/buffapp/adsync/pkg/config"
)

// Module derives the token cipher from the application secret.
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config) (*Cipher, error) {
		return New(cfg.SecretKey)
	}),
)
