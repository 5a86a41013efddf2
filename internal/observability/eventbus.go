package observability

import (
	"context"
	"sort"
)

// EventBus implements the domain EventPublisher interface on top of the base logger.
type EventBus struct{}

// NewEventBus creates a new event bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Publish publishes an event with the given type and data.
func (e *EventBus) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(data)+1)
	fields = append(fields, String("event", eventType))
	for _, k := range keys {
		fields = append(fields, Any(k, data[k]))
	}

	FromContext(ctx).Info(eventType, fields...)
}
