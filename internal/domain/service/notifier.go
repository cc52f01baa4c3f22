package service

import (
	"context"

	"bdgaraj/internal/domain/entity"
)

// Notifier delivers a human-readable message about a new appointment to the
// operator channel. Notify never returns an error; it reports delivery success
// and logs failures itself.
type Notifier interface {
	Notify(ctx context.Context, appointment *entity.Appointment) bool
}
