package usecase

import "context"

// SeedUsecase fills an empty store with baseline data and applies content migrations.
type SeedUsecase interface {
	// Seed is idempotent: running it against a seeded store changes nothing.
	Seed(ctx context.Context) error
}
