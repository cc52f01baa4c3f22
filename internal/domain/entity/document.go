// Package entity contains the core business objects of the project.
package entity

import "time"

// Field names shared by every document collection.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldOrder     = "order"
	FieldStatus    = "status"
)

// Document is implemented by every persisted entity. The identifier is generated
// by the owner of the entity, never by the store.
type Document interface {
	// DocumentID returns the identifier used as the sole lookup key.
	DocumentID() string

	// Assign sets the identifier and creation timestamps of a new entity.
	Assign(id string, now time.Time)
}

// Touchable is implemented by documents that track updated_at.
type Touchable interface {
	Document

	// LastUpdated returns the stored updated_at.
	LastUpdated() time.Time
}
