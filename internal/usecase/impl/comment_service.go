package impl

import (
	"context"
	"log/slog"
	"time"

	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/usecase"
)

type commentService struct {
	comments *resourceService[*entity.Comment, usecase.CommentInput, usecase.CommentStatusPatch]
	services repository.DocumentRepository[*entity.Service]
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	comments repository.DocumentRepository[*entity.Comment],
	services repository.DocumentRepository[*entity.Service],
	logger *slog.Logger,
) usecase.CommentUsecase {
	return newCommentService(comments, services, logger, time.Now)
}

func newCommentService(
	comments repository.DocumentRepository[*entity.Comment],
	services repository.DocumentRepository[*entity.Service],
	logger *slog.Logger,
	now func() time.Time,
) *commentService {
	return &commentService{
		comments: newResourceService[*entity.Comment, usecase.CommentInput, usecase.CommentStatusPatch](
			comments, commentDefinition, logger, now,
		),
		services: services,
	}
}

func (srv *commentService) Create(ctx context.Context, input *usecase.CommentInput) (*entity.Comment, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "missing comment payload")
	}

	// The service reference is only checked here; later deletes do not cascade.
	if _, err := srv.services.FindByID(ctx, input.ServiceID); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find commented service")
	}

	return srv.comments.Create(ctx, input)
}

func (srv *commentService) ListApproved(ctx context.Context, serviceID string) ([]*entity.Comment, error) {
	filter := repository.Filter{entity.FieldStatus: string(entity.CommentApproved)}
	if serviceID != "" {
		filter[entity.FieldServiceID] = serviceID
	}

	return srv.comments.List(ctx, filter)
}

func (srv *commentService) ListAll(ctx context.Context, filter usecase.CommentFilter) ([]*entity.Comment, error) {
	query := repository.Filter{}
	if filter.ServiceID != "" {
		query[entity.FieldServiceID] = filter.ServiceID
	}
	if filter.Status != "" {
		if !entity.CommentStatus(filter.Status).Valid() {
			return nil, domainerrors.ErrInvalidCommentStatus
		}
		query[entity.FieldStatus] = filter.Status
	}

	return srv.comments.List(ctx, query)
}

func (srv *commentService) UpdateStatus(ctx context.Context, id string, status string) (*entity.Comment, error) {
	if !entity.CommentStatus(status).Valid() {
		return nil, domainerrors.ErrInvalidCommentStatus
	}

	if err := srv.comments.apply(ctx, id, map[string]any{entity.FieldStatus: status}); err != nil {
		return nil, err
	}

	return srv.comments.Get(ctx, id)
}

func (srv *commentService) Delete(ctx context.Context, id string) error {
	return srv.comments.Delete(ctx, id)
}
