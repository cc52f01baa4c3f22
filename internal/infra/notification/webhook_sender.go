package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	deliverycontext "bdgaraj/internal/delivery/context"
	"bdgaraj/internal/errors"
)

// webhookSender POSTs the message as JSON to a messaging gateway, e.g. a
// WhatsApp bridge.
type webhookSender struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func newWebhookSender(endpoint, token string, client *http.Client) *webhookSender {
	if client == nil {
		client = http.DefaultClient
	}

	return &webhookSender{
		endpoint:   endpoint,
		token:      token,
		httpClient: client,
	}
}

func (s *webhookSender) Name() string { return "webhook" }

func (s *webhookSender) Send(ctx context.Context, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	return nil
}
