package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/learning-notifier/learning-notifier/pkg/logger"
	"github.com/learning-notifier/learning-notifier/pkg/metrics"
)

const sendgridMailEndpoint = "https://api.sendgrid.com/v3/mail/send"

// Sender submits one HTML email to the mail-delivery provider.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SendGridSender sends HTML mail via the SendGrid v3 Mail Send API.
type SendGridSender struct {
	apiKey     string
	fromEmail  string
	endpoint   string
	httpClient *http.Client
}

func NewSendGridSender(apiKey, fromEmail string) *SendGridSender {
	return &SendGridSender{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		endpoint:   sendgridMailEndpoint,
		httpClient: http.DefaultClient,
	}
}

func (s *SendGridSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload := sgMailPayload{
		Personalizations: []sgPersonalization{{
			To: []sgAddress{{Email: to}},
		}},
		From:    sgAddress{Email: s.fromEmail},
		Subject: subject,
		Content: []sgContent{{Type: "text/html", Value: htmlBody}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SendGrid payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create SendGrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("SendGrid request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SendGrid returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// SendGrid v3 Mail Send API payload types.
type sgMailPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Service renders generated text into the branded HTML shell and submits it.
type Service struct {
	sender Sender
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender}
}

// SendEmail renders and sends one message. It reports acceptance as a bool
// and never raises: false means "not sent, no retry performed".
func (s *Service) SendEmail(ctx context.Context, to, subject, content string) bool {
	html := RenderEmail(content)
	if err := s.sender.Send(ctx, to, subject, html); err != nil {
		metrics.EmailsFailed.WithLabelValues("topic").Inc()
		logger.Errorf("failed to send email to %s: %v", to, err)
		return false
	}
	metrics.EmailsSent.WithLabelValues("topic").Inc()
	logger.Infof("email sent successfully to: %s", to)
	return true
}
