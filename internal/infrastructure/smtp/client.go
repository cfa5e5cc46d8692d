package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"

	"journal-service/internal/config"

	"gopkg.in/gomail.v2"
)

const defaultReminderTemplate = `
<html>
<body style="font-family: sans-serif; color: #333;">
	<h2>Time to check in with yourself</h2>
	<p>Take a few quiet minutes to write down how today felt.</p>
	<p style="color: #888; font-size: 12px;">Sent by {{.ServiceName}}. You can change or disable this reminder in your settings.</p>
</body>
</html>
`

type Client struct {
	cfg         *config.SMTPConfig
	serviceName string
	template    *template.Template
}

// NewClient creates a new SMTP reminder mailer.
func NewClient(cfg *config.SMTPConfig, serviceName string) (*Client, error) {
	tmpl, err := template.New("reminder").Parse(defaultReminderTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reminder template: %w", err)
	}

	return &Client{
		cfg:         cfg,
		serviceName: serviceName,
		template:    tmpl,
	}, nil
}

// NotifyReminder sends the daily journaling nudge to the configured address.
func (c *Client) NotifyReminder(ctx context.Context) error {
	var body bytes.Buffer
	data := map[string]interface{}{
		"ServiceName": c.serviceName,
	}
	if err := c.template.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render reminder email: %w", err)
	}

	return c.send(c.cfg.ToEmail, "Your daily journaling reminder", body.String())
}

// send sends an email using gomail
func (c *Client) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", c.cfg.FromName, c.cfg.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)
	if c.cfg.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: c.cfg.Host}
	}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
