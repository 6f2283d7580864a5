package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGridSenderSuccess(t *testing.T) {
	var got sgMailPayload
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSendGridSender("sg-key", "notify@example.com")
	s.endpoint = srv.URL

	err := s.Send(context.Background(), "user@example.com", "subject", "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, "Bearer sg-key", gotAuth)
	require.Len(t, got.Personalizations, 1)
	assert.Equal(t, "user@example.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "notify@example.com", got.From.Email)
	assert.Equal(t, "text/html", got.Content[0].Type)
}

func TestSendGridSenderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"message":"bad key"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewSendGridSender("bad", "notify@example.com")
	s.endpoint = srv.URL

	err := s.Send(context.Background(), "user@example.com", "subject", "<p>hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

// errSender always fails.
type errSender struct{}

func (errSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	return errors.New("provider down")
}

// okSender records the last message.
type okSender struct {
	to, subject, body string
}

func (s *okSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.to, s.subject, s.body = to, subject, htmlBody
	return nil
}

func TestServiceSendEmailReportsBool(t *testing.T) {
	ok := &okSender{}
	svc := NewService(ok)
	assert.True(t, svc.SendEmail(context.Background(), "a@b.com", "s", "body"))
	assert.Equal(t, "a@b.com", ok.to)
	// content is rendered into the HTML shell before sending
	assert.Contains(t, ok.body, "<!DOCTYPE html>")

	svc = NewService(errSender{})
	assert.False(t, svc.SendEmail(context.Background(), "a@b.com", "s", "body"))
}
