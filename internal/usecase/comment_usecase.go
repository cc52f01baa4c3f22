package usecase

import (
	"context"

	"bdgaraj/internal/domain/entity"
)

// CommentFilter narrows the admin comment listing. Empty fields match everything.
type CommentFilter struct {
	ServiceID string
	Status    string
}

// CommentUsecase defines public commenting and admin moderation
type CommentUsecase interface {
	// Create stores a pending comment on an existing service.
	Create(ctx context.Context, input *CommentInput) (*entity.Comment, error)

	// ListApproved is the public listing, optionally for one service.
	ListApproved(ctx context.Context, serviceID string) ([]*entity.Comment, error)

	// ListAll is the admin listing over every status.
	ListAll(ctx context.Context, filter CommentFilter) ([]*entity.Comment, error)

	// UpdateStatus accepts approved, rejected or pending.
	UpdateStatus(ctx context.Context, id string, status string) (*entity.Comment, error)

	Delete(ctx context.Context, id string) error
}
