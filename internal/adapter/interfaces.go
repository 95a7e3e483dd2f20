package adapter

import (
	"context"

	"github.com/launcherlock/answer-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the client-side contract for talking to the
// relay server. Implementations attach the signed authentication
// headers to every call.
type ServerAdapter interface {
	// RegisterDeviceKey uploads the device's public signing key. The
	// request is signed with the matching private key as proof of
	// possession. Returns ErrKeyConflict if the server already holds a
	// different key for this device.
	RegisterDeviceKey(ctx context.Context, registration models.DeviceKeyRegistration) error

	// SubmitAnswers posts a security-question answer payload. The raw
	// bytes are transmitted exactly as given because the signature
	// covers them; callers must not re-marshal between signing and
	// sending. Returns true when the server deduplicated the
	// submission against an earlier delivery.
	SubmitAnswers(ctx context.Context, rawPayload []byte) (deduplicated bool, err error)
}
