package impl

import (
	"context"
	"log/slog"

	deliverycontext "bdgaraj/internal/delivery/context"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/usecase"
)

type uploadService struct {
	blobs  service.BlobStore
	logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(blobs service.BlobStore, logger *slog.Logger) usecase.UploadUsecase {
	return &uploadService{blobs: blobs, logger: logger}
}

func (srv *uploadService) UploadImage(ctx context.Context, kind usecase.ImageKind, file *usecase.UploadFile) (string, error) {
	if file == nil {
		return "", errors.Wrap(domainerrors.ErrInvalidInput, "missing file")
	}

	path, err := srv.blobs.Store(ctx, string(kind), file.Data, file.ContentType, file.Filename)
	if err != nil {
		return "", err
	}

	deliverycontext.LoggerOrDefault(ctx, srv.logger).
		Info("Stored upload", "kind", kind, "path", path, "size", len(file.Data))

	return path, nil
}

func (srv *uploadService) Open(ctx context.Context, key string) (*service.Blob, error) {
	return srv.blobs.Open(ctx, key)
}
