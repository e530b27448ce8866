package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskWelcome is the task type name stored in Redis; Asynq routes it to
// the registered handler.
const TaskWelcome = "email:welcome"

// WelcomeEmailPayload is the JSON payload of a welcome email task.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// NewWelcomeEmailTask constructs the task for sending a welcome email:
// up to 3 retries, default queue, 30 second handler timeout.
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, Name: name})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
