package impl

import (
	"context"
	"log/slog"
	"time"

	"bdgaraj/config"
	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SeedServiceParams holds dependencies for the seeder, injected by Fx.
type SeedServiceParams struct {
	fx.In

	Config       *config.Config
	Admins       repository.AdminRepository
	Hasher       service.PasswordHasher
	Services     repository.DocumentRepository[*entity.Service]
	Features     repository.DocumentRepository[*entity.Feature]
	Testimonials repository.DocumentRepository[*entity.Testimonial]
	FAQs         repository.DocumentRepository[*entity.FAQ]
	ContactInfo  repository.DocumentRepository[*entity.ContactInfo]
	CTASection   repository.DocumentRepository[*entity.CTASection]
	Logger       *slog.Logger
}

// fieldRenamer is the part of a document repository a content migration needs.
type fieldRenamer interface {
	Count(ctx context.Context, filter repository.Filter) (int64, error)
	UpdateWhere(ctx context.Context, filter repository.Filter, fields map[string]any) (int64, error)
}

type seedService struct {
	cfg          *config.SeedConfig
	admins       repository.AdminRepository
	hasher       service.PasswordHasher
	services     repository.DocumentRepository[*entity.Service]
	features     repository.DocumentRepository[*entity.Feature]
	testimonials repository.DocumentRepository[*entity.Testimonial]
	faqs         repository.DocumentRepository[*entity.FAQ]
	contactInfo  repository.DocumentRepository[*entity.ContactInfo]
	ctaSection   repository.DocumentRepository[*entity.CTASection]
	renamers     map[string]fieldRenamer
	migrations   []contentMigration
	logger       *slog.Logger
	now          func() time.Time
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	cfg := params.Config.Seed
	if cfg == nil {
		cfg = &config.SeedConfig{Enabled: true}
	}

	return &seedService{
		cfg:          cfg,
		admins:       params.Admins,
		hasher:       params.Hasher,
		services:     params.Services,
		features:     params.Features,
		testimonials: params.Testimonials,
		faqs:         params.FAQs,
		contactInfo:  params.ContactInfo,
		ctaSection:   params.CTASection,
		renamers: map[string]fieldRenamer{
			"services":    params.Services,
			"cta_section": params.CTASection,
		},
		migrations: contentMigrations(),
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *seedService) Seed(ctx context.Context) error {
	if !srv.cfg.Enabled {
		srv.logger.Info("Seeding disabled")

		return nil
	}

	if err := srv.seedAdmin(ctx); err != nil {
		return err
	}

	if err := seedList(ctx, srv, srv.services, "services", defaultServices()); err != nil {
		return err
	}
	if err := seedList(ctx, srv, srv.features, "features", defaultFeatures()); err != nil {
		return err
	}
	if err := seedList(ctx, srv, srv.testimonials, "testimonials", defaultTestimonials()); err != nil {
		return err
	}
	if err := seedList(ctx, srv, srv.faqs, "faqs", defaultFAQs()); err != nil {
		return err
	}

	if err := seedSingleton(ctx, srv, srv.contactInfo, entity.ContactInfoID, defaultContactInfo()); err != nil {
		return err
	}
	if err := seedSingleton(ctx, srv, srv.ctaSection, entity.CTASectionID, defaultCTASection()); err != nil {
		return err
	}

	return srv.migrate(ctx)
}

func (srv *seedService) timestamp() time.Time {
	return srv.now().UTC().Truncate(time.Millisecond)
}

func (srv *seedService) seedAdmin(ctx context.Context) error {
	_, err := srv.admins.FindByUsername(ctx, srv.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrDocumentNotFound) {
		return domainerrors.NewDatabaseExecuteError(err, "find seed admin")
	}

	hash, err := srv.hasher.Hash(srv.cfg.AdminPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.Admin{Username: srv.cfg.AdminUsername, PasswordHash: hash}
	admin.Assign(uuid.NewString(), srv.timestamp())

	if err := srv.admins.Create(ctx, admin); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "create seed admin")
	}

	srv.logger.Warn("Default admin created, change its password", "username", admin.Username)

	return nil
}

// seedList inserts defaults only into an empty collection.
func seedList[D entity.Document](
	ctx context.Context,
	srv *seedService,
	repo repository.DocumentRepository[D],
	kind string,
	defaults []D,
) error {
	count, err := repo.Count(ctx, nil)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "count "+kind)
	}
	if count > 0 {
		return nil
	}

	for _, doc := range defaults {
		doc.Assign(uuid.NewString(), srv.timestamp())
		if err := repo.Insert(ctx, doc); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "seed "+kind)
		}
	}

	srv.logger.Info("Seeded default documents", "kind", kind, "count", len(defaults))

	return nil
}

func seedSingleton[D entity.Document](
	ctx context.Context,
	srv *seedService,
	repo repository.DocumentRepository[D],
	id string,
	doc D,
) error {
	_, err := repo.FindByID(ctx, id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrDocumentNotFound) {
		return domainerrors.NewDatabaseExecuteError(err, "find "+id)
	}

	doc.Assign(id, srv.timestamp())
	if err := repo.Insert(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "seed "+id)
	}

	srv.logger.Info("Seeded default singleton", "id", id)

	return nil
}

// migrate applies each content migration whose old value is still stored.
func (srv *seedService) migrate(ctx context.Context) error {
	for _, m := range srv.migrations {
		renamer, ok := srv.renamers[m.collection]
		if !ok {
			return errors.Errorf("migration %s targets unknown collection %s", m.name, m.collection)
		}

		filter := repository.Filter{m.field: m.oldValue}

		pending, err := renamer.Count(ctx, filter)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "check migration "+m.name)
		}
		if pending == 0 {
			continue
		}

		renamed, err := renamer.UpdateWhere(ctx, filter, map[string]any{m.field: m.newValue})
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "apply migration "+m.name)
		}

		srv.logger.Info("Applied content migration", "migration", m.name, "documents", renamed)
	}

	return nil
}
