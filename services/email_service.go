package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/tabledraw/tabledraw/config"
)

// Шаблоны зашиты в бинарь: писем мало, а отдельная директория templates
// только усложняет деплой.
var (
	welcomeEmailTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Welcome to Tabledraw!</h2>
  <p>Hi {{.Nickname}},</p>
  <p>Your director account is ready. Create a tournament, enter the field and
  the pairing engine takes care of the rest.</p>
  <p>Good luck at the tables!</p>
</body>
</html>`))

	tournamentCompletedTemplate = template.Must(template.New("completed").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Tournament finished</h2>
  <p>The tournament <strong>{{.TournamentName}}</strong> has completed all of
  its rounds.</p>
  {{if .WinnerName}}<p>Winner: <strong>{{.WinnerName}}</strong>.</p>{{end}}
  <p>The final standings are available in your dashboard.</p>
</body>
</html>`))
)

type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendEmail шлёт HTML-письмо через сконфигурированный SMTP. Если почта не
// настроена, молча выходит: уведомления - необязательная часть системы.
func (s *EmailService) SendEmail(to []string, subject string, body string) error {
	if !s.cfg.SMTPEnabled() {
		return nil
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)

	msg := []byte("To: " + to[0] + "\r\n" +
		"From: " + s.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	tlsconfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
	}

	var client *smtp.Client
	if s.cfg.SMTPPort == 465 {
		// Прямое TLS-соединение (обычно порт 465)
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("smtp tls dial failed: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			return fmt.Errorf("smtp client creation failed: %w", err)
		}
	} else {
		// STARTTLS (обычно порт 587)
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("smtp dial failed: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("smtp STARTTLS failed: %w", err)
		}
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}

	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("smtp MAIL FROM failed: %w", err)
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return fmt.Errorf("smtp RCPT TO failed: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}

	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("smtp message write failed: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp DATA close failed: %w", err)
	}

	return nil
}

func renderEmailBody(t *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render email template %q: %w", t.Name(), err)
	}
	return body.String(), nil
}

func (s *EmailService) SendWelcomeEmail(userEmail string, nickname string) error {
	htmlBody, err := renderEmailBody(welcomeEmailTemplate, struct {
		Nickname string
	}{Nickname: nickname})
	if err != nil {
		return err
	}
	return s.SendEmail([]string{userEmail}, "Welcome to Tabledraw!", htmlBody)
}

func (s *EmailService) SendTournamentCompletedEmail(userEmail, tournamentName, winnerName string) error {
	htmlBody, err := renderEmailBody(tournamentCompletedTemplate, struct {
		TournamentName string
		WinnerName     string
	}{TournamentName: tournamentName, WinnerName: winnerName})
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Tournament %q finished", tournamentName)
	return s.SendEmail([]string{userEmail}, subject, htmlBody)
}
