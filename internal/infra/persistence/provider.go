// Package persistence selects the document store driver from configuration.
package persistence

import (
	"log/slog"

	"bdgaraj/config"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/infra/persistence/docstore"
	"bdgaraj/internal/infra/persistence/document"
	"bdgaraj/internal/infra/persistence/memory"
	"bdgaraj/internal/infra/persistence/mongodb"
	"bdgaraj/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the document store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the docstore.Store named by storage.driver.
func NewStore(params StoreParams) (docstore.Store, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger.With(slog.String("driver", driver))

	switch driver {
	case config.StorageDriverMongo:
		logger.Info("Using MongoDB document store")

		return mongodb.New(mongodb.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})

	case config.StorageDriverPostgres:
		logger.Info("Using PostgreSQL document store")

		return postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory document store, data is lost on restart")

		return memory.New(), nil

	case "":
		return nil, errors.New("storage.driver is required")

	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the document store and every repository
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewStore,
		document.NewAdminRepository,
		document.NewAppointmentRepository,
		document.NewBlogPostRepository,
		document.NewServiceRepository,
		document.NewFeatureRepository,
		document.NewTestimonialRepository,
		document.NewFAQRepository,
		document.NewContactInfoRepository,
		document.NewCTASectionRepository,
		document.NewProductRepository,
		document.NewCommentRepository,
	),
)
