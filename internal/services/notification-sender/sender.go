// Package sender отправляет почтовые уведомления об истекающих абонементах
// на адрес стойки регистрации станции.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/ski-station/internal/config"
	"github.com/magabrotheeeer/ski-station/internal/lib/sl"
	"github.com/magabrotheeeer/ski-station/internal/lib/smtp"
	"github.com/magabrotheeeer/ski-station/internal/models"
)

// Transport описывает SMTP транспорт для отправки писем.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// SenderService формирует и отправляет письма об истекающих абонементах.
type SenderService struct {
	cfg       *config.Config
	transport Transport
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(cfg *config.Config, transport Transport, log *slog.Logger) *SenderService {
	return &SenderService{
		cfg:       cfg,
		transport: transport,
		log:       log,
	}
}

// SendInfoExpiringSubscription разбирает сообщение очереди и отправляет
// письмо о скором истечении абонемента.
func (s *SenderService) SendInfoExpiringSubscription(body []byte) error {
	var message models.SubscriptionInfo
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := s.cfg.SMTPConnection.NotifyEmail

	subject := "Уведомление об истекающем абонементе"
	bodyText := fmt.Sprintf(
		"Абонемент №%d (%s) лыжника %s %s заканчивается %s.\n\nПредложите клиенту продление.",
		message.SubscriptionID, message.Type,
		message.SkierFirstName, message.SkierLastName,
		message.EndDate.Format("02-01-2006"))

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", s.transport.GetSMTPUser()),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			s.log.Error("failed to close SMTP client", sl.Err(closeErr))
		}
	}()

	if err = client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set mail sender", sl.Err(err))
		return fmt.Errorf("failed to set mail sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		s.log.Error("failed to set recipient", sl.Err(err))
		return fmt.Errorf("failed to set recipient %s: %w", to, err)
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get write closer", sl.Err(err))
		return fmt.Errorf("failed to get write closer: %w", err)
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write message", sl.Err(err))
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close write closer", sl.Err(err))
		return fmt.Errorf("failed to close write closer: %w", err)
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return fmt.Errorf("failed to quit SMTP client: %w", err)
	}

	s.log.Info("email sent successfully", slog.String("to", to))
	return nil
}
