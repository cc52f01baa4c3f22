package document

import (
	"context"

	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/infra/persistence/docstore"
)

const fieldUsername = "username"

type adminRepository struct {
	docs repository.DocumentRepository[*entity.Admin]
}

// NewAdminRepository is the credential store backed by the admins collection.
func NewAdminRepository(store docstore.Store) repository.AdminRepository {
	return &adminRepository{docs: NewRepository[entity.Admin](store, docstore.CollectionAdmins)}
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return r.docs.FindOne(ctx, repository.Filter{fieldUsername: username})
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return r.docs.Insert(ctx, admin)
}
