// Package blob keeps uploaded images in a gocloud bucket. The bucket URL picks
// the backend: file://, s3://, gs:// or azblob://.
package blob

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"bdgaraj/config"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type store struct {
	bucket       *blob.Bucket
	publicPrefix string
	maxSize      int64
	allowed      []string
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.BlobStore, error) {
	cfg := params.Config.Uploads
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("uploads bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Upload bucket opened", slog.String("bucket_url", cfg.BucketURL))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newStore(bucket, cfg), nil
}

func newStore(bucket *blob.Bucket, cfg *config.UploadsConfig) *store {
	allowed := make([]string, 0, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed = append(allowed, normalizeMIME(t))
	}

	return &store{
		bucket:       bucket,
		publicPrefix: "/" + strings.Trim(cfg.PublicPrefix, "/"),
		maxSize:      cfg.MaxSizeBytes,
		allowed:      allowed,
	}
}

// Store checks the declared type, the size and the sniffed content before
// writing. The object key is <kind>/<uuid><ext>.
func (s *store) Store(ctx context.Context, kind string, data []byte, mimeType, filename string) (string, error) {
	declared := normalizeMIME(mimeType)
	if !slices.Contains(s.allowed, declared) {
		return "", domainerrors.ErrUnsupportedFileType.WithDetails("declared type " + mimeType)
	}

	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", domainerrors.ErrFileTooLarge
	}
	if len(data) == 0 {
		return "", domainerrors.ErrInvalidInput.WithDetails("empty file")
	}

	detected := mimetype.Detect(data)
	if !slices.Contains(s.allowed, normalizeMIME(detected.String())) {
		return "", domainerrors.ErrUnsupportedFileType.WithDetails("content looks like " + detected.String())
	}

	key := path.Join(kind, uuid.NewString()+extension(filename, detected))
	opts := &blob.WriterOptions{ContentType: detected.String()}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	return path.Join(s.publicPrefix, key), nil
}

func (s *store) Open(ctx context.Context, key string) (*service.Blob, error) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" || strings.HasPrefix(key, ".") {
		return nil, domainerrors.ErrUploadNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrUploadNotFound
		}

		return nil, errors.Wrapf(err, "open upload %s", key)
	}

	return &service.Blob{
		ReadCloser:  reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func normalizeMIME(t string) string {
	if media, _, err := mime.ParseMediaType(t); err == nil {
		return media
	}

	return strings.ToLower(strings.TrimSpace(t))
}

// extension prefers the uploaded file's extension and falls back to the sniffed one.
func extension(filename string, detected *mimetype.MIME) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && len(ext) <= 5 {
		return ext
	}

	return detected.Extension()
}
