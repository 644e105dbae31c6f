package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/config"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/i18n"
)

// SMTPMailer implementa ports.Mailer sobre SMTP com as mensagens
// vindas do serviço de i18n (idioma padrão)
type SMTPMailer struct {
	cfg  *config.SMTPConfig
	i18n *i18n.Service
}

// NewSMTPMailer cria um novo SMTPMailer
func NewSMTPMailer(cfg *config.SMTPConfig, i18nService *i18n.Service) ports.Mailer {
	return &SMTPMailer{cfg: cfg, i18n: i18nService}
}

// SendReservationConfirmation envia o email de confirmação da reserva
func (m *SMTPMailer) SendReservationConfirmation(_ context.Context, user *entities.User, reservation *entities.Reservation, pkg *entities.TravelPackage) error {
	lang := m.i18n.GetDefaultLanguage()

	subject := m.i18n.T(lang, "email.reservation_confirmation.subject", map[string]interface{}{
		"Title": pkg.Title,
	})
	body := m.i18n.T(lang, "email.reservation_confirmation.body", map[string]interface{}{
		"Name":  user.Name,
		"Title": pkg.Title,
	})

	return m.send(user.Email.String(), subject, body)
}

// send monta e envia a mensagem via SMTP com autenticação PLAIN
func (m *SMTPMailer) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String()))
}
