package models

// PendingSubmission is one durable retry-queue row on the device. Rows
// are created when an immediate send fails, mutated on every failed
// drain attempt, and deleted on first successful delivery (or when the
// stored payload turns out to be unparsable).
type PendingSubmission struct {
	// ID is assigned by the local store, monotonically increasing.
	// Drains process ready rows in ascending ID order.
	ID int64 `json:"id"`

	// PayloadJSON is the full serialized AnswerPayload captured at
	// first enqueue time, including its idempotency key.
	PayloadJSON string `json:"payload_json"`

	// RetryCount is the number of failed drain attempts so far.
	RetryCount int `json:"retry_count"`

	// NextRetryAtMillis is the earliest wall-clock time (Unix millis)
	// the row becomes eligible for redelivery.
	NextRetryAtMillis int64 `json:"next_retry_at_millis"`
}
