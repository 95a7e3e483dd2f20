// Package mailer composes and dispatches the guardian notification
// mail carrying a device's submitted answers.
package mailer

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers one plain-text message. Dispatch failures surface as
// errors so the relay can answer 500 and let the device re-queue.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, textBody string) error
}
