// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed queue: the client enqueues tasks, the server
// runs workers that process them. The only job type today is welcome
// email delivery, which keeps email provider latency off the request
// path.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/DharaniDJ/zero2prod/internal/config"
	"github.com/DharaniDJ/zero2prod/internal/lib/email"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	// Client enqueues tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	sender email.Sender
	logger *zerolog.Logger
}

// NewJobService creates a JobService over the configured Redis. sender is
// the email implementation the workers deliver through.
func NewJobService(cfg *config.RedisConfig, sender email.Sender, logger *zerolog.Logger) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		// Queue weights: out of 10 workers, roughly 6 serve critical,
		// 3 default, 1 low.
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
	})

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		sender: sender,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker server. Start does
// not block; workers run until Stop.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("starting background job server")
	return j.server.Start(mux)
}

// Stop gracefully stops the worker server and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	_ = j.Client.Close()
}
