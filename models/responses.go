package models

// APIResponse is the JSON body returned by every relay endpoint. The
// server always emits an explicit Ok value; the pointer exists for the
// client, which must also parse responses from older relay revisions
// that omitted the field entirely.
type APIResponse struct {
	// Ok reports whether the request was accepted. Nil means the field
	// was absent from the wire, which the client's compatibility shim
	// treats as acceptance (see Accepted).
	Ok *bool `json:"ok"`

	// Message is a short human-readable status or rejection reason.
	Message string `json:"message,omitempty"`

	// Deduplicated is set on submission responses that were
	// short-circuited by an idempotency-key collision: the request
	// succeeded earlier and no additional mail was sent.
	Deduplicated bool `json:"deduplicated,omitempty"`
}

// Accepted reports whether the response signals success. An absent ok
// field counts as success — a compatibility shim for relay revisions
// that only set ok on failure. New server code always emits the field.
func (r *APIResponse) Accepted() bool {
	if r == nil {
		return true
	}
	return r.Ok == nil || *r.Ok
}

// OkResponse builds a success APIResponse with an explicit ok field.
func OkResponse(message string) APIResponse {
	ok := true
	return APIResponse{Ok: &ok, Message: message}
}

// DeduplicatedResponse builds the success response returned when an
// idempotency-key collision short-circuits mail dispatch.
func DeduplicatedResponse(message string) APIResponse {
	resp := OkResponse(message)
	resp.Deduplicated = true
	return resp
}

// ErrResponse builds a failure APIResponse with an explicit ok field.
func ErrResponse(message string) APIResponse {
	ok := false
	return APIResponse{Ok: &ok, Message: message}
}
