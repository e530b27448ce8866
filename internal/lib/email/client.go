package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/DharaniDJ/zero2prod/internal/config"
)

// Templates are embedded so the binary carries its own email bodies.
//
//go:embed templates/*.html
var templateFS embed.FS

// Client sends emails through the Resend API.
type Client struct {
	client    *resend.Client
	from      string
	templates *template.Template
	logger    *zerolog.Logger
}

// NewClient creates a Resend-backed email client from config.
func NewClient(cfg *config.EmailConfig, logger *zerolog.Logger) (*Client, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parsing email templates")
	}

	return &Client{
		client:    resend.NewClient(cfg.ResendAPIKey),
		from:      fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderEmail),
		templates: templates,
		logger:    logger,
	}, nil
}

// SendWelcome renders the welcome template and sends it to the subscriber.
func (c *Client) SendWelcome(_ context.Context, to, name string) error {
	body, err := c.render(TemplateWelcome, map[string]string{"Name": name})
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: "Welcome to our newsletter!",
		Html:    body,
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return errors.Wrapf(err, "sending %s email to %s", TemplateWelcome, to)
	}

	c.logger.Info().
		Str("to", to).
		Str("template", string(TemplateWelcome)).
		Msg("email sent")
	return nil
}

func (c *Client) render(name Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := c.templates.ExecuteTemplate(&body, string(name)+".html", data); err != nil {
		return "", errors.Wrapf(err, "executing email template %s", name)
	}
	return body.String(), nil
}
