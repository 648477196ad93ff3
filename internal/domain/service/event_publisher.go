package service

import (
	"context"

	"adresses/internal/domain/entity"
)

// EventPublisher defines the interface for publishing address events to a message queue
type EventPublisher interface {
	// PublishAddressEvent publishes an address event for downstream consumers
	PublishAddressEvent(ctx context.Context, event *entity.AddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
