package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"creditreportanalyser/internal/pkg/log_messages"
	"creditreportanalyser/internal/pkg/logger"
)

const eventTypeReportIngested = "report.ingested"

type PubSubResult interface {
	Get(ctx context.Context) (string, error)
}

type PubSubTopic interface {
	Publish(ctx context.Context, msg *pubsub.Message) PubSubResult
}

// ReportEventPublisher pushes report lifecycle events to a Pub/Sub topic.
// The topic sits behind PubSubTopic so tests can swap it out.
type ReportEventPublisher struct {
	Client *pubsub.Client
	Topic  PubSubTopic
}

type GCPTopicAdapter struct {
	topic *pubsub.Topic
}

func (g *GCPTopicAdapter) Publish(ctx context.Context, msg *pubsub.Message) PubSubResult {
	return &GCPPublishResultAdapter{g.topic.Publish(ctx, msg)}
}

type GCPPublishResultAdapter struct {
	res *pubsub.PublishResult
}

func (g *GCPPublishResultAdapter) Get(ctx context.Context) (string, error) {
	return g.res.Get(ctx)
}

type GCPClientFactory func(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error)

func NewReportEventPublisher(ctx context.Context, projectID, topicID string, factory GCPClientFactory) (*ReportEventPublisher, error) {
	client, err := factory(ctx, projectID)
	if err != nil {
		return nil, err
	}

	topic := client.Topic(topicID)
	if topic == nil {
		return nil, fmt.Errorf(log_messages.TopicDoesNotExists, topicID)
	}

	adapter := &GCPTopicAdapter{topic: topic}

	return &ReportEventPublisher{Client: client, Topic: adapter}, nil
}

func (p *ReportEventPublisher) Close() {
	if err := p.Client.Close(); err != nil {
		logger.Error("failed to close pubsub client", err)
	}
}

func (p *ReportEventPublisher) PublishMessage(ctx context.Context,
	message any) (string, error) {

	inputData, err := json.Marshal(message)
	if err != nil {
		logger.Error("failed to marshal pubsub message", err)
		return "", fmt.Errorf(log_messages.ErrorMarshallingMessage, err)
	}

	res := p.Topic.Publish(ctx, &pubsub.Message{
		Data:       inputData,
		Attributes: map[string]string{"eventType": eventTypeReportIngested},
	})

	messageID, err := res.Get(ctx)
	if err != nil {
		logger.Error("failed to publish pubsub message", err)
		return "", fmt.Errorf(log_messages.ErrorInMessagePublishing, err)
	}

	return messageID, nil
}
