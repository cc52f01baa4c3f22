package notification

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"bdgaraj/config"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/errors"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates the Notifier selected by notification.provider.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notification
	if cfg == nil {
		cfg = &config.NotificationConfig{Provider: config.NotificationProviderLog}
	}
	logger := params.Logger

	var s sender
	switch cfg.Provider {
	case config.NotificationProviderLog, "":
		logger.Info("Appointment notifications are logged only")
		s = &logSender{logger: logger}

	case config.NotificationProviderWebhook:
		if cfg.Webhook.Endpoint == "" {
			return nil, errors.New("webhook endpoint is required for webhook provider")
		}
		logger.Info("Using webhook for appointment notifications", slog.String("endpoint", cfg.Webhook.Endpoint))
		s = newWebhookSender(cfg.Webhook.Endpoint, cfg.Webhook.Token, &http.Client{Timeout: cfg.Timeout})

	case config.NotificationProviderFirebase:
		fs, err := newFirebaseSender(params.Ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.Topic)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase for appointment notifications", slog.String("topic", cfg.Firebase.Topic))
		s = fs

	case config.NotificationProviderPubSub:
		ps, err := newPubSubSender(params.Ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
		if err != nil {
			return nil, err
		}
		s = ps

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}

	if closer, ok := s.(io.Closer); ok {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing notification sender", slog.String("provider", s.Name()))

				return closer.Close()
			},
		})
	}

	return newNotifier(s, cfg.OperatorChannel, cfg.Timeout, logger), nil
}
