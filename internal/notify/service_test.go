package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/learning-notifier/learning-notifier/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTopics struct {
	text string
	err  error
}

func (f *fakeTopics) GenerateContent(ctx context.Context) (string, error) {
	return f.text, f.err
}

type fakeUsers struct {
	users []models.User
	err   error
}

func (f *fakeUsers) List(ctx context.Context, adminCode string) ([]models.User, error) {
	return f.users, f.err
}

// fakeMailer fails sends to addresses in failFor and records every attempt.
type fakeMailer struct {
	mu       sync.Mutex
	sent     []string
	subjects []string
	failFor  map[string]bool
}

func (f *fakeMailer) SendEmail(ctx context.Context, to, subject, content string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	f.subjects = append(f.subjects, subject)
	return !f.failFor[to]
}

func someUsers(emails ...string) []models.User {
	out := make([]models.User, 0, len(emails))
	for _, e := range emails {
		out = append(out, models.User{Name: "U", Email: e})
	}
	return out
}

func TestRunIndependentFailures(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]bool{"b@x.com": true}}
	svc := NewService(
		&fakeTopics{text: "today's topic"},
		&fakeUsers{users: someUsers("a@x.com", "b@x.com", "c@x.com")},
		mailer,
	)

	sent, total, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 3, total)

	// all three attempted despite the middle failure
	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com", "c@x.com"}, mailer.sent)
	for _, subj := range mailer.subjects {
		assert.Equal(t, "📚 Your Daily Learning Topic", subj)
	}
}

func TestRunZeroUsersIsSuccess(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(&fakeTopics{text: "topic"}, &fakeUsers{}, mailer)

	sent, total, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, total)
	assert.Empty(t, mailer.sent)
}

func TestRunGenerationFailureAborts(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(
		&fakeTopics{err: errors.New("upstream down")},
		&fakeUsers{users: someUsers("a@x.com")},
		mailer,
	)

	_, _, err := svc.Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, mailer.sent, "no mail may be sent when generation fails")
}

func TestRunEmptyContentAborts(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(&fakeTopics{text: ""}, &fakeUsers{users: someUsers("a@x.com")}, mailer)

	_, _, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoContent)
	assert.Empty(t, mailer.sent)
}

func TestRunUserFetchFailureAborts(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(
		&fakeTopics{text: "topic"},
		&fakeUsers{err: errors.New("storage down")},
		mailer,
	)

	_, _, err := svc.Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, mailer.sent)
}

func TestSendTestNotification(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(&fakeTopics{}, &fakeUsers{}, mailer)

	assert.True(t, svc.SendTestNotification(context.Background(), "t@x.com"))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "t@x.com", mailer.sent[0])
	assert.Equal(t, "🧪 Test Learning Topic", mailer.subjects[0])

	mailer.failFor = map[string]bool{"t@x.com": true}
	assert.False(t, svc.SendTestNotification(context.Background(), "t@x.com"))
}
