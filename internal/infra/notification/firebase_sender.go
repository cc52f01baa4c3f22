package notification

import (
	"context"

	"bdgaraj/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const firebaseTitle = "Yeni Randevu"

// messagingClient is the part of *messaging.Client the sender uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseSender pushes the message to an FCM topic the operator's devices subscribe to.
type firebaseSender struct {
	client messagingClient
	topic  string
}

func newFirebaseSender(ctx context.Context, credentialsPath, topic string) (*firebaseSender, error) {
	if topic == "" {
		return nil, errors.New("firebase topic is required for firebase provider")
	}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client, topic: topic}, nil
}

func (s *firebaseSender) Name() string { return "firebase" }

func (s *firebaseSender) Send(ctx context.Context, msg *Message) error {
	if _, err := s.client.Send(ctx, s.buildMessage(msg)); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

func (s *firebaseSender) buildMessage(msg *Message) *messaging.Message {
	data := map[string]string{
		"appointment_id": msg.AppointmentID,
		"channel":        msg.Channel,
	}
	if msg.RequestID != "" {
		data["request_id"] = msg.RequestID
	}

	return &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: firebaseTitle,
			Body:  msg.Body,
		},
		Data: data,
	}
}
