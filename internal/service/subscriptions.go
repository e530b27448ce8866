package service

import (
	"context"

	"github.com/DharaniDJ/zero2prod/internal/lib/job"
	"github.com/DharaniDJ/zero2prod/internal/repository"
	"github.com/DharaniDJ/zero2prod/internal/server"
)

// SubscriptionService implements newsletter subscription logic.
type SubscriptionService struct {
	server *server.Server
}

// NewSubscriptionService constructs the service with access to shared
// app dependencies.
func NewSubscriptionService(s *server.Server) *SubscriptionService {
	return &SubscriptionService{server: s}
}

// Subscribe stores a new subscriber and dispatches the welcome email.
//
// The email leaves through the background queue when the job service is
// running, and inline otherwise. Email delivery failure is logged but
// does not fail the subscription: the stored record is the source of
// truth, and queued sends retry on their own.
func (svc *SubscriptionService) Subscribe(ctx context.Context, sub repository.NewSubscriber) (repository.Subscriber, error) {
	stored, err := svc.server.Store.Insert(ctx, sub)
	if err != nil {
		return repository.Subscriber{}, err
	}

	svc.server.Logger.Info().
		Str("subscriber_id", stored.ID.String()).
		Str("email", stored.Email).
		Msg("new subscriber stored")

	svc.sendWelcome(ctx, stored)
	return stored, nil
}

func (svc *SubscriptionService) sendWelcome(ctx context.Context, sub repository.Subscriber) {
	logger := svc.server.Logger

	if svc.server.Job != nil {
		task, err := job.NewWelcomeEmailTask(sub.Email, sub.Name)
		if err == nil {
			_, err = svc.server.Job.Client.EnqueueContext(ctx, task)
		}
		if err != nil {
			logger.Error().Err(err).
				Str("email", sub.Email).
				Msg("failed to enqueue welcome email task")
		}
		return
	}

	if err := svc.server.Email.SendWelcome(ctx, sub.Email, sub.Name); err != nil {
		logger.Error().Err(err).
			Str("email", sub.Email).
			Msg("failed to send welcome email")
	}
}
