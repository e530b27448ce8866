package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleWelcomeEmailTask processes a welcome email task. Returning an
// error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshaling welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", TaskWelcome).
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.sender.SendWelcome(ctx, p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", TaskWelcome).
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	return nil
}
