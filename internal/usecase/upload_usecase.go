package usecase

import (
	"context"

	"bdgaraj/internal/domain/service"
)

// ImageKind groups uploaded images by what they illustrate
type ImageKind string

const (
	ImageKindService ImageKind = "services"
	ImageKindProduct ImageKind = "products"
)

// UploadFile is an uploaded file as received by the transport
type UploadFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

// UploadUsecase stores and serves uploaded images
type UploadUsecase interface {
	// UploadImage validates and stores the file and returns its retrieval path.
	UploadImage(ctx context.Context, kind ImageKind, file *UploadFile) (string, error)

	// Open returns a stored upload by the key following the public prefix.
	Open(ctx context.Context, key string) (*service.Blob, error)
}
