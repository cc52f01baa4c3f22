// Package document implements the typed repositories on top of a docstore.Store.
package document

import (
	"context"

	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/infra/persistence/docstore"
)

// pointer constrains D to *T so empty documents can be allocated for decoding.
type pointer[T any] interface {
	*T
	entity.Document
}

type documentRepository[T any, D pointer[T]] struct {
	coll docstore.Collection
}

// NewRepository returns the generic repository for the named collection.
func NewRepository[T any, D pointer[T]](store docstore.Store, collection string) repository.DocumentRepository[D] {
	return &documentRepository[T, D]{coll: store.Collection(collection)}
}

func (r *documentRepository[T, D]) Insert(ctx context.Context, doc D) error {
	if err := r.coll.Insert(ctx, doc); err != nil {
		return errors.WithMessage(err, "repository insert")
	}

	return nil
}

func (r *documentRepository[T, D]) FindByID(ctx context.Context, id string) (D, error) {
	return r.FindOne(ctx, repository.Filter{entity.FieldID: id})
}

func (r *documentRepository[T, D]) FindOne(ctx context.Context, filter repository.Filter) (D, error) {
	doc := D(new(T))
	if err := r.coll.FindOne(ctx, filter, doc); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.WithMessage(err, "repository find one")
	}

	return doc, nil
}

func (r *documentRepository[T, D]) Find(ctx context.Context, filter repository.Filter, sort repository.Sort) ([]D, error) {
	var docs []D
	if err := r.coll.Find(ctx, filter, docstore.FindOptions{Sort: sort}, &docs); err != nil {
		return nil, errors.WithMessage(err, "repository find")
	}
	if docs == nil {
		docs = []D{}
	}

	return docs, nil
}

func (r *documentRepository[T, D]) Update(ctx context.Context, id string, fields map[string]any) error {
	matched, err := r.UpdateWhere(ctx, repository.Filter{entity.FieldID: id}, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

func (r *documentRepository[T, D]) UpdateWhere(ctx context.Context, filter repository.Filter, fields map[string]any) (int64, error) {
	matched, err := r.coll.Set(ctx, filter, fields)
	if err != nil {
		return 0, errors.WithMessage(err, "repository update")
	}

	return matched, nil
}

func (r *documentRepository[T, D]) Delete(ctx context.Context, id string) error {
	removed, err := r.coll.Delete(ctx, repository.Filter{entity.FieldID: id})
	if err != nil {
		return errors.WithMessage(err, "repository delete")
	}
	if removed == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

func (r *documentRepository[T, D]) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	n, err := r.coll.Count(ctx, filter)
	if err != nil {
		return 0, errors.WithMessage(err, "repository count")
	}

	return n, nil
}
