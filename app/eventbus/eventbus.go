// Package eventbus provides the in-process pub/sub used to decouple
// mutating operations from the audit trail that records them.
package eventbus

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventBus wraps a watermill gochannel pub/sub. Publishing and subscribing
// share one channel-backed broker, so events never leave the process.
type EventBus struct {
	pubSub *gochannel.GoChannel
}

// New creates an in-process event bus.
func New(logger *slog.Logger) *EventBus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			// Buffer publishes so a slow audit writer cannot stall request handlers.
			OutputChannelBuffer: 256,
		},
		watermill.NewSlogLogger(logger),
	)
	return &EventBus{pubSub: pubSub}
}

// Publish publishes messages to the given topic.
func (b *EventBus) Publish(topic string, messages ...*message.Message) error {
	return b.pubSub.Publish(topic, messages...)
}

// Subscribe returns a channel of messages for the given topic.
func (b *EventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

// Close shuts the bus down, closing all subscriber channels.
func (b *EventBus) Close() error {
	return b.pubSub.Close()
}
