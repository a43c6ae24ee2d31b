package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
// Failures are logged by the caller, never surfaced to the original request.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	// SendConferenceConfirmation mails the organizer that their conference
	// was created. conferenceInfo is a rendered description of the conference.
	SendConferenceConfirmation(ctx context.Context, to, conferenceInfo string) error
}
