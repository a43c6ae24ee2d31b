package domain

import "context"

// Task names accepted by the deferred task runner.
const (
	TaskSendConfirmationEmail = "send_confirmation_email"
	TaskSetFeaturedSpeaker    = "set_featured_speaker"
	TaskSetAnnouncement       = "set_announcement"
)

// Task parameter keys.
const (
	TaskParamEmail          = "email"
	TaskParamConferenceInfo = "conference_info"
	TaskParamConferenceID   = "conference_id"
	TaskParamSpeaker        = "speaker"
)

// TaskQueue is the deferred-task port: named jobs with a parameter bag,
// executed out-of-band, at-least-once. Enqueue must not block on execution.
type TaskQueue interface {
	Enqueue(ctx context.Context, task string, params map[string]string) error
}
