package service

// MetricsRecorder counts the failures that operations swallow instead of returning.
type MetricsRecorder interface {
	// StorageCleanupFailed counts an object that could not be removed during a cascade delete or rollback.
	StorageCleanupFailed(reason string)

	// EventPublishFailed counts an address event that was dropped.
	EventPublishFailed(eventType string)
}
