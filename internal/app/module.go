package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/buffapp/adsync/internal/app/api/server"
	"github.com/buffapp/adsync/internal/app/service/campaign"
	"github.com/buffapp/adsync/internal/app/service/connection"
	"github.com/buffapp/adsync/internal/app/service/report"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/internal/platform/db"
	"github.com/buffapp/adsync/internal/platform/objstore"
	"github.com/buffapp/adsync/pkg/config"
	"github.com/buffapp/adsync/pkg/logger"
	"github.com/buffapp/adsync/pkg/tokencrypt"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	objstore.Module,
	server.Module,
	adsapi.Module,
	tokencrypt.Module,
	connection.Module,
	report.Module,
	campaign.Module,
)
