// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bdgaraj/internal/delivery/context"
	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/usecase"

	"github.com/google/uuid"
)

// ResourceDefinition describes one resource kind served by the generic service.
type ResourceDefinition[D entity.Document, I any] struct {
	// Kind names the resource in logs and error details.
	Kind string

	// NotFound is returned when an id matches nothing.
	NotFound *domainerrors.BaseError

	// Build maps the create payload onto a new entity, applying defaults.
	Build func(input *I) D

	// Sort is the listing order.
	Sort repository.Sort
}

type resourceService[D entity.Document, I any, P any] struct {
	repo   repository.DocumentRepository[D]
	def    ResourceDefinition[D, I]
	logger *slog.Logger
	now    func() time.Time
}

// NewResourceService builds the CRUD use case of one resource kind.
func NewResourceService[D entity.Document, I any, P any](
	repo repository.DocumentRepository[D],
	def ResourceDefinition[D, I],
	logger *slog.Logger,
) usecase.ResourceUsecase[D, I, P] {
	return newResourceService[D, I, P](repo, def, logger, time.Now)
}

func newResourceService[D entity.Document, I any, P any](
	repo repository.DocumentRepository[D],
	def ResourceDefinition[D, I],
	logger *slog.Logger,
	now func() time.Time,
) *resourceService[D, I, P] {
	return &resourceService[D, I, P]{
		repo:   repo,
		def:    def,
		logger: logger,
		now:    now,
	}
}

// timestamp is truncated to the millisecond precision every store driver keeps.
func (srv *resourceService[D, I, P]) timestamp() time.Time {
	return srv.now().UTC().Truncate(time.Millisecond)
}

func advance(ts, prev time.Time) time.Time {
	if ts.After(prev) {
		return ts
	}

	return prev.Add(time.Millisecond)
}

func (srv *resourceService[D, I, P]) Create(ctx context.Context, input *I) (D, error) {
	var zero D
	if input == nil {
		return zero, errors.Wrap(domainerrors.ErrInvalidInput, "missing "+srv.def.Kind+" payload")
	}

	doc := srv.def.Build(input)
	doc.Assign(uuid.NewString(), srv.timestamp())

	if err := srv.repo.Insert(ctx, doc); err != nil {
		return zero, domainerrors.NewDatabaseExecuteError(err, "create "+srv.def.Kind)
	}

	deliverycontext.LoggerOrDefault(ctx, srv.logger).Info("Created "+srv.def.Kind, "id", doc.DocumentID())

	return doc, nil
}

func (srv *resourceService[D, I, P]) List(ctx context.Context, filter repository.Filter) ([]D, error) {
	docs, err := srv.repo.Find(ctx, filter, srv.def.Sort)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list "+srv.def.Kind)
	}

	return docs, nil
}

func (srv *resourceService[D, I, P]) Get(ctx context.Context, id string) (D, error) {
	doc, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		var zero D

		return zero, srv.translate(err, "get")
	}

	return doc, nil
}

func (srv *resourceService[D, I, P]) Update(ctx context.Context, id string, patch *P) (D, error) {
	fields, err := patchFields(patch)
	if err != nil {
		var zero D

		return zero, errors.Wrap(domainerrors.ErrInvalidInput, err.Error())
	}
	if len(fields) == 0 {
		return srv.Get(ctx, id)
	}

	if err := srv.apply(ctx, id, fields); err != nil {
		var zero D

		return zero, err
	}

	deliverycontext.LoggerOrDefault(ctx, srv.logger).Info("Updated "+srv.def.Kind, "id", id, "fields", len(fields))

	return srv.Get(ctx, id)
}

// apply stamps updated_at on documents that track it and writes fields.
// The stamp is at least one millisecond past the stored one.
func (srv *resourceService[D, I, P]) apply(ctx context.Context, id string, fields map[string]any) error {
	var zero D
	if _, ok := any(zero).(entity.Touchable); ok {
		current, err := srv.repo.FindByID(ctx, id)
		if err != nil {
			return srv.translate(err, "update")
		}

		fields[entity.FieldUpdatedAt] = advance(srv.timestamp(), any(current).(entity.Touchable).LastUpdated())
	}

	if err := srv.repo.Update(ctx, id, fields); err != nil {
		return srv.translate(err, "update")
	}

	return nil
}

func (srv *resourceService[D, I, P]) Delete(ctx context.Context, id string) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		return srv.translate(err, "delete")
	}

	deliverycontext.LoggerOrDefault(ctx, srv.logger).Info("Deleted "+srv.def.Kind, "id", id)

	return nil
}

func (srv *resourceService[D, I, P]) translate(err error, op string) error {
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return srv.def.NotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, op+" "+srv.def.Kind)
}
