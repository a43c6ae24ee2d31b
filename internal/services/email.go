package services

import (
	"context"
	"fmt"
	"log/slog"

	"conferencecentral/internal/domain"
)

const confirmationSubject = "You created a new Conference!"

type emailService struct {
	mailer domain.Mailer
	logger *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer.
func NewEmailService(mailer domain.Mailer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, logger: logger}
}

// SendConferenceConfirmation mails the organizer that their conference was
// created.
func (s *emailService) SendConferenceConfirmation(ctx context.Context, to, conferenceInfo string) error {
	if to == "" {
		return fmt.Errorf("confirmation recipient is empty")
	}
	body := fmt.Sprintf("Hi, you have created a following conference:\r\n\r\n%s", conferenceInfo)
	if err := s.mailer.Send(to, confirmationSubject, "", body); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	s.logger.Info("conference confirmation sent", "to", to)
	return nil
}
