// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bdgaraj/internal/domain/entity"
)

// ErrDocumentNotFound is returned when no document matches the given identifier or filter.
var ErrDocumentNotFound = errors.New("document not found")

// Filter selects documents by exact equality on top-level fields.
// An empty filter matches every document of the collection.
type Filter map[string]any

// SortKind tells the store how to compare the values of a sort field.
type SortKind int

const (
	SortText SortKind = iota
	SortNumber
	SortTime
)

// Sort describes the listing order. A zero Sort leaves the order unspecified.
type Sort struct {
	Field      string
	Descending bool
	Kind       SortKind
}

// NewestFirst orders activity feeds by creation time, descending.
var NewestFirst = Sort{Field: entity.FieldCreatedAt, Descending: true, Kind: SortTime}

// ByOrder orders display lists by their explicit order field, ascending.
var ByOrder = Sort{Field: entity.FieldOrder, Kind: SortNumber}

// DocumentRepository is the generic CRUD contract shared by every resource kind.
// D is a pointer to an entity type.
type DocumentRepository[D entity.Document] interface {
	// Insert persists a fully built document. Identity and timestamps must already be assigned.
	Insert(ctx context.Context, doc D) error

	// FindByID returns ErrDocumentNotFound when the id matches nothing.
	FindByID(ctx context.Context, id string) (D, error)

	// FindOne returns the first document matching filter or ErrDocumentNotFound.
	FindOne(ctx context.Context, filter Filter) (D, error)

	// Find lists every document matching filter in the given order.
	Find(ctx context.Context, filter Filter, sort Sort) ([]D, error)

	// Update overlays fields onto the stored document with the given id.
	// It returns ErrDocumentNotFound when the id matches nothing.
	Update(ctx context.Context, id string, fields map[string]any) error

	// UpdateWhere overlays fields onto every document matching filter and
	// reports how many documents matched.
	UpdateWhere(ctx context.Context, filter Filter, fields map[string]any) (int64, error)

	// Delete removes the document with the given id.
	// It returns ErrDocumentNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error

	// Count reports how many documents match filter.
	Count(ctx context.Context, filter Filter) (int64, error)
}
