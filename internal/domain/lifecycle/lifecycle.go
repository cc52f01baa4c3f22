// Package lifecycle holds timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds connection checks on start and graceful shutdown on stop.
	DefaultTimeout = 10 * time.Second

	// SeedTimeout bounds the whole seeding run including migrations.
	SeedTimeout = 30 * time.Second
)
