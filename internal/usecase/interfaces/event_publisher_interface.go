package interfaces

import "context"

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_mock.go -package=mock_interfaces

// IEventPublisher publishes order events to the message broker.
type IEventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}
