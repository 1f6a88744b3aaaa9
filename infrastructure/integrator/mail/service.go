package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/vfg2006/analytics-engine/infrastructure/integrator/mail/smtpclient"
	"github.com/vfg2006/analytics-engine/internal/config"
	"github.com/vfg2006/analytics-engine/pkg/metrics"
	"golang.org/x/time/rate"
)

const (
	defaultRatePerSecond    = 5
	defaultBurst            = 10
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 60 * time.Second
)

// ErrMailerUnavailable is returned without contacting the server while the
// circuit breaker is open.
var ErrMailerUnavailable = errors.New("mail service unavailable")

// Mailer is the outbound mail collaborator.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP mailer, or a logging mailer when no SMTP host is set.
func New(cfg config.Mail) Mailer {
	if cfg.Host == "" {
		logrus.Warn("SMTP_HOST not set, report e-mails will only be logged")
		return NewLogMailer()
	}

	return NewSMTPMailer(cfg, smtpclient.NewClient(cfg))
}

type SMTPMailer struct {
	client   smtpclient.Client
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[struct{}]
	from     string
	fromName string
}

func NewSMTPMailer(cfg config.Mail, client smtpclient.Client) *SMTPMailer {
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = defaultFailureThreshold
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = defaultOpenTimeout
	}

	settings := gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Mail circuit breaker changed state")
		},
	}

	return &SMTPMailer{
		client:   client,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		breaker:  gobreaker.NewCircuitBreaker[struct{}](settings),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		metrics.MailDeliveries.WithLabelValues(metrics.StatusSkipped).Inc()
		return fmt.Errorf("error waiting for send slot: %w", err)
	}

	msg := smtpclient.Message{
		From:     m.from,
		FromName: m.fromName,
		To:       to,
		Subject:  subject,
		Body:     body,
	}

	_, err := m.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, m.client.Send(ctx, msg)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.MailDeliveries.WithLabelValues(metrics.StatusSkipped).Inc()
			return fmt.Errorf("%w: %w", ErrMailerUnavailable, err)
		}

		metrics.MailDeliveries.WithLabelValues(metrics.StatusFailed).Inc()
		return fmt.Errorf("error sending mail to %s: %w", to, err)
	}

	metrics.MailDeliveries.WithLabelValues(metrics.StatusSuccess).Inc()
	return nil
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
		"bytes":   len(body),
	}).Info("Report e-mail (not sent, no SMTP host configured)")

	metrics.MailDeliveries.WithLabelValues(metrics.StatusSkipped).Inc()
	return nil
}
