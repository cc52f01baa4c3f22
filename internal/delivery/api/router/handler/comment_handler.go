package handler

import (
	"log/slog"
	"net/http"

	"bdgaraj/internal/delivery/api/middleware"
	"bdgaraj/internal/delivery/api/response"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler holds dependencies for comment-related handlers
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// Create handles a public comment submission
func (h *CommentHandler) Create(c echo.Context) error {
	var req usecase.CommentInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	comment, err := h.commentUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comment)
}

// ListApproved handles the public listing
func (h *CommentHandler) ListApproved(c echo.Context) error {
	comments, err := h.commentUC.ListApproved(c.Request().Context(), c.QueryParam(entity.FieldServiceID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}

// ListAll handles the moderation listing
func (h *CommentHandler) ListAll(c echo.Context) error {
	comments, err := h.commentUC.ListAll(c.Request().Context(), usecase.CommentFilter{
		ServiceID: c.QueryParam(entity.FieldServiceID),
		Status:    c.QueryParam(entity.FieldStatus),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, comments)
}

// UpdateStatus handles a moderation decision
func (h *CommentHandler) UpdateStatus(c echo.Context) error {
	var req usecase.CommentStatusPatch
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	comment, err := h.commentUC.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if admin, ok := middleware.GetAdmin(c); ok {
		h.logger.Info("Comment moderated",
			slog.String("comment_id", comment.ID),
			slog.String("status", string(comment.Status)),
			slog.String("admin", admin.Username),
		)
	}

	return response.Success(c, http.StatusOK, comment)
}

// Delete handles comment removal
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.commentUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Comment deleted successfully")
}
