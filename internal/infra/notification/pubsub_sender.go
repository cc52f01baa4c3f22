package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"bdgaraj/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// pubsubSender publishes the message to a Pub/Sub topic; a downstream
// subscriber owns the actual WhatsApp delivery.
type pubsubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

func newPubSubSender(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*pubsubSender, error) {
	if projectID == "" || topicID == "" {
		return nil, errors.New("project ID and topic ID are required for pubsub provider")
	}

	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Pub/Sub notification publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &pubsubSender{
		client:    client,
		publisher: client.Publisher(topicID),
	}, nil
}

func (s *pubsubSender) Name() string { return "pubsub" }

func (s *pubsubSender) Send(ctx context.Context, msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{"appointment_id": msg.AppointmentID}
	if msg.RequestID != "" {
		attributes["request_id"] = msg.RequestID
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes})
	if _, err := result.Get(ctx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Close stops the publisher and releases the client.
func (s *pubsubSender) Close() error {
	s.publisher.Stop()

	return errors.WithStack(s.client.Close())
}
