package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"bdgaraj/config"
	"bdgaraj/internal/delivery/api/response"
	deliverycontext "bdgaraj/internal/delivery/context"
	"bdgaraj/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// UploadHandler accepts image uploads and serves them back
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	maxSize  int64
	logger   *slog.Logger
}

// UploadResponse carries the retrieval path of a stored image
type UploadResponse struct {
	ImageURL string `json:"image_url"`
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	var maxSize int64
	if params.Config.Uploads != nil {
		maxSize = params.Config.Uploads.MaxSizeBytes
	}

	return &UploadHandler{
		uploadUC: params.UploadUC,
		maxSize:  maxSize,
		logger:   params.Logger,
	}
}

// UploadServiceImage handles POST /upload/service-image
func (h *UploadHandler) UploadServiceImage(c echo.Context) error {
	return h.upload(c, usecase.ImageKindService)
}

// UploadProductImage handles POST /upload/product-image
func (h *UploadHandler) UploadProductImage(c echo.Context) error {
	return h.upload(c, usecase.ImageKindProduct)
}

func (h *UploadHandler) upload(c echo.Context, kind usecase.ImageKind) error {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field \"file\" is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded file cannot be read")
	}
	defer src.Close()

	// One byte past the limit is enough for the store to reject the file.
	var reader io.Reader = src
	if h.maxSize > 0 {
		reader = io.LimitReader(src, h.maxSize+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded file cannot be read")
	}

	path, err := h.uploadUC.UploadImage(c.Request().Context(), kind, &usecase.UploadFile{
		Data:        data,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Filename:    fileHeader.Filename,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UploadResponse{ImageURL: path})
}

// Serve streams a stored upload; the wildcard holds the key
func (h *UploadHandler) Serve(c echo.Context) error {
	blob, err := h.uploadUC.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() {
		if cerr := blob.Close(); cerr != nil {
			deliverycontext.LoggerOrDefault(c.Request().Context(), h.logger).
				Warn("Failed to close upload reader", slog.Any("error", cerr))
		}
	}()

	header := c.Response().Header()
	header.Set("Cache-Control", "public, max-age=86400")
	if blob.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(blob.Size, 10))
	}

	return c.Stream(http.StatusOK, blob.ContentType, blob)
}
