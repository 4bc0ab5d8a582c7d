package facades

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/matcornic/hermes/v2"

	"github.com/sbilibin2017/rdrx/internal/logger"
)

const mailTimeout = 5 * time.Second

// mailSender is the part of *mailgun.MailgunImpl used by Mailer.
type mailSender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// Mailer renders transactional mails with hermes and sends them through Mailgun.
type Mailer struct {
	sender  mailSender
	hermes  *hermes.Hermes
	from    string
	baseURL string
	enabled bool
}

// NewMailgun returns a Mailgun client for domain.
func NewMailgun(domain, apiKey string) *mailgun.MailgunImpl {
	return mailgun.NewMailgun(domain, apiKey)
}

// NewMailer returns a Mailer. When enabled is false mails are rendered
// and logged but not sent.
func NewMailer(sender mailSender, from, baseURL string, enabled bool) *Mailer {
	if !enabled {
		logger.Log.Infow("mail sending disabled, mails will only be logged")
	}
	return &Mailer{
		sender: sender,
		hermes: &hermes.Hermes{
			Theme:         new(hermes.Default),
			TextDirection: hermes.TDLeftToRight,
			Product: hermes.Product{
				Name:        "RdRx",
				Link:        baseURL,
				Copyright:   "RdRx",
				TroubleText: "If the '{ACTION}' button does not work, copy and paste the URL below into your web browser.",
			},
		},
		from:    from,
		baseURL: baseURL,
		enabled: enabled,
	}
}

// SendWelcome greets a freshly registered user.
func (m *Mailer) SendWelcome(ctx context.Context, email, name string) error {
	body := hermes.Email{
		Body: hermes.Body{
			Name: name,
			Intros: []string{
				"Welcome to RdRx! Your account is ready.",
				"You can now shorten links, share snippets and upload files.",
			},
			Actions: []hermes.Action{
				{
					Instructions: "Start by creating your first short link:",
					Button: hermes.Button{
						Text: "Create a link",
						Link: m.baseURL + "/create",
					},
				},
			},
		},
	}
	return m.send(ctx, email, "Welcome to RdRx", body)
}

// SendPasswordReset mails the reset link carrying token.
func (m *Mailer) SendPasswordReset(ctx context.Context, email, name, token string) error {
	body := hermes.Email{
		Body: hermes.Body{
			Name: name,
			Intros: []string{
				"You have received this email because a password reset was requested for your account.",
			},
			Actions: []hermes.Action{
				{
					Instructions: "Click the button below to choose a new password. The link expires in one hour.",
					Button: hermes.Button{
						Color: "#DC4D2F",
						Text:  "Reset your password",
						Link:  m.ResetLink(token),
					},
				},
			},
			Outros: []string{
				"If you did not request a password reset, no further action is required.",
			},
		},
	}
	return m.send(ctx, email, "Reset your RdRx password", body)
}

// ResetLink is the page a reset mail points to.
func (m *Mailer) ResetLink(token string) string {
	return m.baseURL + "/reset-password?token=" + url.QueryEscape(token)
}

func (m *Mailer) send(ctx context.Context, to, subject string, body hermes.Email) error {
	html, err := m.hermes.GenerateHTML(body)
	if err != nil {
		return fmt.Errorf("render mail: %w", err)
	}
	text, err := m.hermes.GeneratePlainText(body)
	if err != nil {
		return fmt.Errorf("render mail: %w", err)
	}

	if !m.enabled {
		logger.Log.Infow("skipping mail", "to", to, "subject", subject)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()

	message := m.sender.NewMessage(m.from, subject, text, to)
	message.SetHtml(html)

	_, id, err := m.sender.Send(ctx, message)
	if err != nil {
		logger.Log.Errorw("error sending mail", "to", to, "subject", subject, "error", err)
		return err
	}
	logger.Log.Infow("mail sent", "to", to, "subject", subject, "id", id)
	return nil
}
