package services

import (
	"fmt"
	"log"
	"strings"

	"clinica_app_go/config"
	"clinica_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}
	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// SendEmailAsync sends an email in a goroutine so handlers never block on
// delivery. Failures are logged, not surfaced; a booking must not fail
// because the mail provider hiccuped.
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func() {
		if err := SendEmail(cfg, emailCopy); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}()
}

func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (test mode - not actually sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}

// BuildBookingConfirmationEmail creates the confirmation email sent to the
// client right after a successful booking
func BuildBookingConfirmationEmail(apt *models.Appointment, appURL string) *Email {
	date := apt.DataSelecionada.Format("02/01/2006")
	modalidade := "presencial"
	if apt.Modalidade == models.ModalidadeOnline {
		modalidade = "online"
	}

	text := fmt.Sprintf(
		"Olá %s,\n\nSua consulta foi agendada com sucesso.\n\n"+
			"Data: %s\nHorário: %s\nModalidade: %s\nCódigo de confirmação: %s\n\n"+
			"Para cancelar, acesse %s/cancelar e informe o código acima.\n",
		apt.Nome, date, apt.HorarioSelecionado, modalidade, apt.Codigo, appURL,
	)

	html := fmt.Sprintf(
		`<p>Olá %s,</p><p>Sua consulta foi agendada com sucesso.</p>
<ul><li><strong>Data:</strong> %s</li>
<li><strong>Horário:</strong> %s</li>
<li><strong>Modalidade:</strong> %s</li>
<li><strong>Código de confirmação:</strong> %s</li></ul>
<p>Para cancelar, acesse <a href="%s/cancelar">%s/cancelar</a> e informe o código acima.</p>`,
		apt.Nome, date, apt.HorarioSelecionado, modalidade, apt.Codigo, appURL, appURL,
	)

	return &Email{
		To:       []string{apt.Email},
		Subject:  fmt.Sprintf("Consulta agendada para %s às %s", date, apt.HorarioSelecionado),
		HTMLBody: html,
		TextBody: text,
	}
}

// BuildBookingCancelledEmail creates the cancellation notice sent to the client
func BuildBookingCancelledEmail(apt *models.Appointment, appURL string) *Email {
	date := apt.DataSelecionada.Format("02/01/2006")

	text := fmt.Sprintf(
		"Olá %s,\n\nSua consulta de %s às %s foi cancelada.\n\n"+
			"Se desejar, agende um novo horário em %s/agendar.\n",
		apt.Nome, date, apt.HorarioSelecionado, appURL,
	)

	html := fmt.Sprintf(
		`<p>Olá %s,</p><p>Sua consulta de <strong>%s às %s</strong> foi cancelada.</p>
<p>Se desejar, agende um novo horário em <a href="%s/agendar">%s/agendar</a>.</p>`,
		apt.Nome, date, apt.HorarioSelecionado, appURL, appURL,
	)

	return &Email{
		To:       []string{apt.Email},
		Subject:  "Consulta cancelada",
		HTMLBody: html,
		TextBody: text,
	}
}
