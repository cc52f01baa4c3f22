// Package docstore defines the schemaless collection contract that every storage
// driver implements. Documents are plain Go values encoded with their json/bson
// tags; the identifier lives in the "id" field.
package docstore

import (
	"context"
	"errors"

	"bdgaraj/internal/domain/repository"
)

// ErrNotFound is returned by FindOne when nothing matches.
var ErrNotFound = errors.New("docstore: no matching document")

// Collection names
const (
	CollectionAdmins       = "admins"
	CollectionAppointments = "appointments"
	CollectionBlogPosts    = "blog_posts"
	CollectionServices     = "services"
	CollectionFeatures     = "features"
	CollectionTestimonials = "testimonials"
	CollectionFAQs         = "faqs"
	CollectionContactInfo  = "contact_info"
	CollectionCTASection   = "cta_section"
	CollectionProducts     = "products"
	CollectionComments     = "comments"
)

// FindOptions controls listing.
type FindOptions struct {
	Sort repository.Sort
}

// Collection is a named set of documents. Every single-document operation is
// atomic; nothing spans documents.
type Collection interface {
	// Insert stores doc as a new document.
	Insert(ctx context.Context, doc any) error

	// FindOne decodes the first match into out.
	FindOne(ctx context.Context, filter repository.Filter, out any) error

	// Find decodes every match into out, which must point to a slice.
	Find(ctx context.Context, filter repository.Filter, opts FindOptions, out any) error

	// Set overlays fields onto every match and reports how many matched.
	Set(ctx context.Context, filter repository.Filter, fields map[string]any) (int64, error)

	// Delete removes every match and reports how many were removed.
	Delete(ctx context.Context, filter repository.Filter) (int64, error)

	// Count reports how many documents match.
	Count(ctx context.Context, filter repository.Filter) (int64, error)
}

// Store hands out collections of one database.
type Store interface {
	Collection(name string) Collection

	// Ping checks connectivity with the backing database.
	Ping(ctx context.Context) error
}
