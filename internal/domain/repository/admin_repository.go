package repository

import (
	"context"

	"bdgaraj/internal/domain/entity"
)

// AdminRepository is the credential store. Username uniqueness is checked by the
// caller before Create; the store does not enforce it.
type AdminRepository interface {
	// FindByUsername matches the username exactly and returns ErrDocumentNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)

	// Create persists a new admin.
	Create(ctx context.Context, admin *entity.Admin) error
}
