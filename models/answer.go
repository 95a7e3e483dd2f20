package models

// QuestionAnswer is a single configured question together with the answer
// the child typed to unlock the device.
type QuestionAnswer struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// AnswerPayload is the business payload relayed to the guardian's mailbox.
// The authentication layer treats it as opaque bytes; only the relay's
// validation and dispatch stages look inside.
type AnswerPayload struct {
	// DeviceID is the submitting device's identifier. It must match the
	// authenticated identity in the signature headers.
	DeviceID string `json:"deviceId"`

	// To is the guardian's destination email address. Optional at the
	// model level, required by payload validation.
	To string `json:"to,omitempty"`

	// AnsweredAt is the client-side answer time as an ISO-8601 string.
	AnsweredAt string `json:"answeredAt"`

	// IdempotencyKey identifies one logical submission across retries.
	// The queue reuses the key captured at first enqueue time verbatim
	// on every retry, so the relay can deduplicate redeliveries.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`

	// Questions is the ordered list of question/answer pairs.
	Questions []QuestionAnswer `json:"questions"`
}
