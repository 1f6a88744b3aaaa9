package smtpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/vfg2006/analytics-engine/internal/config"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPClient struct {
	config config.Mail
	now    func() time.Time
}

func NewClient(cfg config.Mail) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &SMTPClient{
		config: cfg,
		now:    time.Now,
	}
}

// Send delivers msg over a single SMTP session. The session honors the
// context deadline, or the configured timeout when the context has none.
func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	addr := net.JoinHostPort(c.config.Host, strconv.Itoa(c.config.Port))

	dialer := &net.Dialer{Timeout: c.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("error connecting to smtp server: %w", err)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = c.now().Add(c.config.Timeout)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("error setting smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("error opening smtp session: %w", err)
	}
	defer client.Close()

	if c.config.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: c.config.Host, MinVersion: tls.VersionTLS12}); err != nil {
				return fmt.Errorf("error starting tls: %w", err)
			}
		}
	}

	if c.config.User != "" {
		auth := smtp.PlainAuth("", c.config.User, c.config.Password, c.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("error authenticating: %w", err)
		}
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("error setting sender: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("error setting recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("error opening message body: %w", err)
	}
	if _, err := w.Write(msg.Bytes(c.now())); err != nil {
		w.Close()
		return fmt.Errorf("error writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error finishing message: %w", err)
	}

	return client.Quit()
}
