package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "bdgaraj/internal/delivery/context"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/usecase"

	"go.uber.org/fx"
)

// AppointmentServiceParams holds dependencies for the appointment use case, injected by Fx
type AppointmentServiceParams struct {
	fx.In

	Lc       fx.Lifecycle
	Repo     repository.DocumentRepository[*entity.Appointment]
	Notifier service.Notifier
	Logger   *slog.Logger
}

type appointmentService struct {
	*resourceService[*entity.Appointment, usecase.AppointmentInput, usecase.AppointmentPatch]

	notifier service.Notifier
	logger   *slog.Logger
	inflight sync.WaitGroup

	// dispatch runs a notification; it starts a goroutine outside tests.
	dispatch func(fn func())
}

// NewAppointmentService creates appointments and notifies the operator once
// each appointment is stored. Pending notifications are awaited on shutdown.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	srv := newAppointmentService(params.Repo, params.Notifier, params.Logger, time.Now)

	params.Lc.Append(fx.Hook{
		OnStop: srv.drain,
	})

	return srv
}

func newAppointmentService(
	repo repository.DocumentRepository[*entity.Appointment],
	notifier service.Notifier,
	logger *slog.Logger,
	now func() time.Time,
) *appointmentService {
	srv := &appointmentService{
		resourceService: newResourceService[*entity.Appointment, usecase.AppointmentInput, usecase.AppointmentPatch](
			repo, appointmentDefinition, logger, now,
		),
		notifier: notifier,
		logger:   logger,
	}
	srv.dispatch = func(fn func()) { go fn() }

	return srv
}

func (srv *appointmentService) Create(ctx context.Context, input *usecase.AppointmentInput) (*entity.Appointment, error) {
	created, err := srv.resourceService.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	snapshot := *created
	notifyCtx := context.WithoutCancel(ctx)

	srv.inflight.Add(1)
	srv.dispatch(func() {
		defer srv.inflight.Done()

		if !srv.notifier.Notify(notifyCtx, &snapshot) {
			deliverycontext.LoggerOrDefault(notifyCtx, srv.logger).
				Warn("Operator was not notified about appointment", "appointmentID", snapshot.ID)
		}
	})

	return created, nil
}

func (srv *appointmentService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		srv.logger.Warn("Shutdown interrupted pending appointment notifications")

		return ctx.Err()
	}
}
