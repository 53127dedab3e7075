package notify

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"hrdashboard/internal/model"
)

// Notifier tells staff about new public submissions.
type Notifier interface {
	ContactReceived(ctx context.Context, msg *model.ContactMessage) error
	ApplicationReceived(ctx context.Context, app *model.Application, job *model.Job) error
}

// Config holds SMTP settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Sender delivers a composed message. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// New returns an SMTP notifier, or a no-op one when Host or To is empty.
func New(cfg Config) Notifier {
	if cfg.Host == "" || cfg.To == "" {
		return Nop{}
	}
	return NewSMTPNotifier(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password))
}

// Nop discards notifications.
type Nop struct{}

func (Nop) ContactReceived(context.Context, *model.ContactMessage) error { return nil }

func (Nop) ApplicationReceived(context.Context, *model.Application, *model.Job) error { return nil }

// SMTPNotifier sends notifications by mail.
type SMTPNotifier struct {
	cfg    Config
	sender Sender
}

// NewSMTPNotifier creates a notifier sending through sender.
func NewSMTPNotifier(cfg Config, sender Sender) *SMTPNotifier {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPNotifier{cfg: cfg, sender: sender}
}

var contactTmpl = template.Must(template.New("contact").Parse(
	`<p><strong>{{.FullName}}</strong> &lt;{{.Email}}&gt;{{with .Company}} from {{.}}{{end}}{{with .Phone}}, phone {{.}}{{end}} wrote:</p>
<blockquote>{{.Message}}</blockquote>`))

var applicationTmpl = template.Must(template.New("application").Parse(
	`<p><strong>{{.App.ApplicantName}}</strong> &lt;{{.App.Email}}&gt;, phone {{.App.Phone}}, applied for <strong>{{.Job.Title}}</strong> ({{.Job.Location}}).</p>
{{with .App.ResumeURL}}<p>Resume: <a href="{{.}}">{{.}}</a></p>{{end}}`))

// ContactReceived mails the contact message to staff.
func (n *SMTPNotifier) ContactReceived(ctx context.Context, msg *model.ContactMessage) error {
	var body strings.Builder
	if err := contactTmpl.Execute(&body, msg); err != nil {
		return fmt.Errorf("render contact mail: %w", err)
	}
	return n.send(ctx, "New contact message from "+msg.FullName, msg.Email, body.String())
}

// ApplicationReceived mails a summary of the application to staff.
func (n *SMTPNotifier) ApplicationReceived(ctx context.Context, app *model.Application, job *model.Job) error {
	var body strings.Builder
	data := struct {
		App *model.Application
		Job *model.Job
	}{app, job}
	if err := applicationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render application mail: %w", err)
	}
	return n.send(ctx, fmt.Sprintf("New application for %s", job.Title), app.Email, body.String())
}

func (n *SMTPNotifier) send(ctx context.Context, subject, replyTo, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Reply-To", replyTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
