package worker

import (
	"context"
	"log/slog"

	"conferencecentral/internal/adapters/tasks"
	"conferencecentral/internal/domain"
)

// Worker consumes deferred task envelopes and dispatches them to the derivers
// and the email service. Execution is at-least-once; every handler is
// idempotent.
type Worker struct {
	queue       *tasks.Client
	conferences domain.ConferenceService
	sessions    domain.SessionService
	email       domain.EmailService
	logger      *slog.Logger
	cancel      context.CancelFunc
	done        chan struct{}
}

func New(
	queue *tasks.Client,
	conferences domain.ConferenceService,
	sessions domain.SessionService,
	email domain.EmailService,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		queue:       queue,
		conferences: conferences,
		sessions:    sessions,
		email:       email,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Start begins consuming tasks until the context is canceled or Stop is
// called.
func (w *Worker) Start(ctx context.Context) error {
	cctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	if err := w.queue.Consume(func(env tasks.Envelope) error {
		return w.handle(cctx, env)
	}); err != nil {
		cancel()
		close(w.done)
		return err
	}

	w.logger.Info("task worker started")
	go func() {
		defer close(w.done)
		<-cctx.Done()
		w.logger.Info("task worker stopped")
	}()
	return nil
}

// Stop cancels the worker and waits for it to wind down.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}

// handle dispatches one task. Returning an error requeues the message;
// mail failures are logged and dropped instead, matching fire-and-forget
// semantics.
func (w *Worker) handle(ctx context.Context, env tasks.Envelope) error {
	w.logger.Debug("task received", "task", env.Task, "task_id", env.ID)

	switch env.Task {
	case domain.TaskSendConfirmationEmail:
		to := env.Params[domain.TaskParamEmail]
		info := env.Params[domain.TaskParamConferenceInfo]
		if err := w.email.SendConferenceConfirmation(ctx, to, info); err != nil {
			w.logger.Warn("failed to send confirmation email", "task_id", env.ID, "err", err)
		}
		return nil

	case domain.TaskSetFeaturedSpeaker:
		conferenceID := env.Params[domain.TaskParamConferenceID]
		speaker := env.Params[domain.TaskParamSpeaker]
		if conferenceID == "" || speaker == "" {
			w.logger.Error("dropping featured speaker task with missing params", "task_id", env.ID)
			return nil
		}
		_, err := w.sessions.RecomputeFeaturedSpeaker(ctx, conferenceID, speaker)
		return err

	case domain.TaskSetAnnouncement:
		_, err := w.conferences.RecomputeAnnouncement(ctx)
		return err

	default:
		w.logger.Warn("dropping unknown task", "task", env.Task, "task_id", env.ID)
		return nil
	}
}
