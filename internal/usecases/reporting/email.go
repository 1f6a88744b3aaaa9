package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/utils"
	"github.com/vfg2006/analytics-engine/pkg/validation"
)

const periodLayout = "2006-01-02 15:04"

func renderEmail(result *domain.ReportResult) (string, string, error) {
	results, err := utils.PrettyJson(result.Results)
	if err != nil {
		return "", "", fmt.Errorf("error rendering results: %w", err)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Report: %s\n", result.ReportName)
	fmt.Fprintf(&body, "Type: %s\n", result.ReportType)
	fmt.Fprintf(&body, "Period: %s to %s UTC\n",
		result.DateRange.Start.UTC().Format(periodLayout),
		result.DateRange.End.UTC().Format(periodLayout))
	fmt.Fprintf(&body, "Generated: %s\n\n", result.ExecutedAt.UTC().Format(time.RFC3339))
	body.WriteString(results)
	body.WriteString("\n")

	return "Report: " + result.ReportName, body.String(), nil
}

// deliver mails result to every valid recipient of report and returns how many
// sends succeeded. Invalid addresses are skipped. It fails only when there was
// at least one valid address and none of them could be reached.
func (s *Service) deliver(ctx context.Context, report *domain.ScheduledReport, result *domain.ReportResult) (int, error) {
	subject, body, err := renderEmail(result)
	if err != nil {
		return 0, err
	}

	fields := logrus.Fields{
		"report_id": report.ID,
		"tenant_id": tenantField(report.TenantID),
	}

	valid, sent := 0, 0
	for _, recipient := range report.Recipients {
		recipient = strings.TrimSpace(recipient)
		if !validation.IsValidEmail(recipient) {
			logrus.WithFields(fields).WithField("recipient", recipient).Warn("Skipping invalid report recipient")
			continue
		}
		valid++

		if err := s.mailer.Send(ctx, recipient, subject, body); err != nil {
			logrus.WithFields(fields).WithField("recipient", recipient).WithError(err).Error("Error sending report e-mail")
			continue
		}
		sent++
	}

	if valid > 0 && sent == 0 {
		return 0, ErrDeliveryFailed
	}

	logrus.WithFields(fields).WithField("sent", sent).Info("Report e-mail sent")
	return sent, nil
}
