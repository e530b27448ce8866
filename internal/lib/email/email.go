// Package email provides the transactional email sending client.
//
// Production sends go through Resend; environments without email
// configuration use LogSender, which records the send in the logs
// instead of reaching the provider.
package email

import (
	"context"

	"github.com/rs/zerolog"
)

// Sender delivers transactional emails to subscribers.
type Sender interface {
	// SendWelcome sends the welcome email for a new subscription.
	SendWelcome(ctx context.Context, to, name string) error
}

// LogSender is a Sender that logs instead of sending. It keeps the send
// path exercised in local and test environments without provider
// credentials.
type LogSender struct {
	Logger *zerolog.Logger
}

func (s LogSender) SendWelcome(_ context.Context, to, name string) error {
	s.Logger.Info().
		Str("to", to).
		Str("name", name).
		Str("template", string(TemplateWelcome)).
		Msg("email sending disabled, logging welcome email instead")
	return nil
}
