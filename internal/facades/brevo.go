package facades

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	brevo "github.com/getbrevo/brevo-go/lib"
	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
)

const defaultBrevoBaseURL = "https://api.brevo.com"

// BrevoMailFacade sends transactional email through the Brevo API client.
type BrevoMailFacade struct {
	client   *brevo.APIClient
	from     string
	fromName string
}

// NewBrevoMailFacade creates the facade. An empty baseURL uses the public API.
func NewBrevoMailFacade(baseURL, apiKey, from, fromName string) *BrevoMailFacade {
	if baseURL == "" {
		baseURL = defaultBrevoBaseURL
	}

	cfg := brevo.NewConfiguration()
	cfg.BasePath = baseURL + "/v3"
	cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	cfg.AddDefaultHeader("api-key", apiKey)

	return &BrevoMailFacade{
		client:   brevo.NewAPIClient(cfg),
		from:     from,
		fromName: fromName,
	}
}

// SendMail delivers one HTML message.
func (f *BrevoMailFacade) SendMail(ctx context.Context, to, subject, html string) error {
	_, resp, err := f.client.TransactionalEmailsApi.SendTransacEmail(ctx, brevo.SendSmtpEmail{
		Sender:      &brevo.SendSmtpEmailSender{Name: f.fromName, Email: f.from},
		To:          []brevo.SendSmtpEmailTo{{Email: to}},
		Subject:     subject,
		HtmlContent: html,
	})
	if err != nil {
		var apiErr brevo.GenericSwaggerError
		if errors.As(err, &apiErr) && resp != nil {
			logger.FromContext(ctx).Errorw("brevo rejected email", "to", to, "status", resp.StatusCode, "body", string(apiErr.Body()))
			return fmt.Errorf("brevo: unexpected status %d", resp.StatusCode)
		}
		logger.FromContext(ctx).Errorw("brevo request failed", "to", to, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("email sent", "to", to, "subject", subject)
	return nil
}
