package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"conferencecentral/internal/adapters/tasks"
	"conferencecentral/internal/domain"
)

type fakeEmailService struct {
	to   string
	info string
	err  error
}

func (f *fakeEmailService) SendConferenceConfirmation(ctx context.Context, to, conferenceInfo string) error {
	f.to = to
	f.info = conferenceInfo
	return f.err
}

type fakeConferenceRecomputer struct {
	domain.ConferenceService
	called bool
	err    error
}

func (f *fakeConferenceRecomputer) RecomputeAnnouncement(ctx context.Context) (string, error) {
	f.called = true
	return "", f.err
}

type fakeSessionRecomputer struct {
	domain.SessionService
	conferenceID string
	speaker      string
	err          error
}

func (f *fakeSessionRecomputer) RecomputeFeaturedSpeaker(ctx context.Context, conferenceID, speaker string) (string, error) {
	f.conferenceID = conferenceID
	f.speaker = speaker
	return "", f.err
}

func newTestWorker(conferences domain.ConferenceService, sessions domain.SessionService, email domain.EmailService) *Worker {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(nil, conferences, sessions, email, logger)
}

func TestWorker_Handle_ConfirmationEmail(t *testing.T) {
	email := &fakeEmailService{}
	w := newTestWorker(&fakeConferenceRecomputer{}, &fakeSessionRecomputer{}, email)

	err := w.handle(context.Background(), tasks.Envelope{
		ID:   "t1",
		Task: domain.TaskSendConfirmationEmail,
		Params: map[string]string{
			domain.TaskParamEmail:          "alice@example.com",
			domain.TaskParamConferenceInfo: "GopherCon (Berlin)",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email.to != "alice@example.com" || email.info != "GopherCon (Berlin)" {
		t.Fatalf("unexpected mail call: to=%q info=%q", email.to, email.info)
	}
}

func TestWorker_Handle_ConfirmationEmailFailureIsDropped(t *testing.T) {
	email := &fakeEmailService{err: errors.New("ses unavailable")}
	w := newTestWorker(&fakeConferenceRecomputer{}, &fakeSessionRecomputer{}, email)

	err := w.handle(context.Background(), tasks.Envelope{
		ID:     "t1",
		Task:   domain.TaskSendConfirmationEmail,
		Params: map[string]string{domain.TaskParamEmail: "alice@example.com"},
	})
	// Mail failures must not requeue the message.
	if err != nil {
		t.Fatalf("expected mail failure to be swallowed, got %v", err)
	}
}

func TestWorker_Handle_SetFeaturedSpeaker(t *testing.T) {
	sessions := &fakeSessionRecomputer{}
	w := newTestWorker(&fakeConferenceRecomputer{}, sessions, &fakeEmailService{})

	err := w.handle(context.Background(), tasks.Envelope{
		ID:   "t2",
		Task: domain.TaskSetFeaturedSpeaker,
		Params: map[string]string{
			domain.TaskParamConferenceID: "conf-1",
			domain.TaskParamSpeaker:      "Rob",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions.conferenceID != "conf-1" || sessions.speaker != "Rob" {
		t.Fatalf("unexpected recompute call: %q %q", sessions.conferenceID, sessions.speaker)
	}
}

func TestWorker_Handle_SetFeaturedSpeaker_MissingParamsDropped(t *testing.T) {
	sessions := &fakeSessionRecomputer{}
	w := newTestWorker(&fakeConferenceRecomputer{}, sessions, &fakeEmailService{})

	err := w.handle(context.Background(), tasks.Envelope{
		ID:     "t2",
		Task:   domain.TaskSetFeaturedSpeaker,
		Params: map[string]string{domain.TaskParamSpeaker: "Rob"},
	})
	if err != nil {
		t.Fatalf("expected malformed task to be dropped, got %v", err)
	}
	if sessions.conferenceID != "" {
		t.Fatal("expected no recompute for malformed task")
	}
}

func TestWorker_Handle_SetFeaturedSpeaker_ErrorRequeues(t *testing.T) {
	sessions := &fakeSessionRecomputer{err: errors.New("db down")}
	w := newTestWorker(&fakeConferenceRecomputer{}, sessions, &fakeEmailService{})

	err := w.handle(context.Background(), tasks.Envelope{
		ID:   "t2",
		Task: domain.TaskSetFeaturedSpeaker,
		Params: map[string]string{
			domain.TaskParamConferenceID: "conf-1",
			domain.TaskParamSpeaker:      "Rob",
		},
	})
	if err == nil {
		t.Fatal("expected error to be returned for requeue")
	}
}

func TestWorker_Handle_SetAnnouncement(t *testing.T) {
	conferences := &fakeConferenceRecomputer{}
	w := newTestWorker(conferences, &fakeSessionRecomputer{}, &fakeEmailService{})

	err := w.handle(context.Background(), tasks.Envelope{ID: "t3", Task: domain.TaskSetAnnouncement})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conferences.called {
		t.Fatal("expected announcement recompute")
	}
}

func TestWorker_Handle_UnknownTaskDropped(t *testing.T) {
	w := newTestWorker(&fakeConferenceRecomputer{}, &fakeSessionRecomputer{}, &fakeEmailService{})

	if err := w.handle(context.Background(), tasks.Envelope{ID: "t4", Task: "reticulate_splines"}); err != nil {
		t.Fatalf("expected unknown task to be dropped, got %v", err)
	}
}
