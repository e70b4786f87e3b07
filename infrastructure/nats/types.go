package nats

import "time"

const (
	StreamName = "TASK_EVENTS"

	DefaultSubjectPrefix = "tasks.events"

	streamMaxAge = 7 * 24 * time.Hour
)

// Subject joins the configured prefix with an event type, e.g. tasks.events.created.
func Subject(prefix, eventType string) string {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return prefix + "." + eventType
}
