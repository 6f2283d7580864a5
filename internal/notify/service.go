package notify

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/learning-notifier/learning-notifier/internal/models"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
)

const (
	dailySubject = "📚 Your Daily Learning Topic"
	testSubject  = "🧪 Test Learning Topic"

	testTopic = "This is a test topic"
)

// ErrNoContent signals a generation run that produced empty output.
var ErrNoContent = errors.New("failed to generate learning topic")

// TopicGenerator produces the day's content.
type TopicGenerator interface {
	GenerateContent(ctx context.Context) (string, error)
}

// UserDirectory lists notification recipients.
type UserDirectory interface {
	List(ctx context.Context, adminCode string) ([]models.User, error)
}

// Mailer renders and sends one message, reporting acceptance as a bool.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, content string) bool
}

// Service orchestrates the daily run: generate one topic, fetch all users,
// fan the topic out to every user by email, tally results.
type Service struct {
	topics TopicGenerator
	users  UserDirectory
	mailer Mailer
}

func NewService(topics TopicGenerator, users UserDirectory, mailer Mailer) *Service {
	return &Service{topics: topics, users: users, mailer: mailer}
}

// Run executes one full notification cycle and reports the delivery tally:
// sent of total attempted recipients. Generation failures abort the run;
// per-user send failures do not abort sibling sends. Every failure is logged
// here, so scheduled callers may discard the return values.
func (s *Service) Run(ctx context.Context) (sent, total int, err error) {
	runID := uuid.NewString()[:8]
	logger.Infof("[run %s] starting daily notification process", runID)

	topic, err := s.topics.GenerateContent(ctx)
	if err != nil {
		logger.Errorf("[run %s] error in daily notification process: %v", runID, err)
		return 0, 0, err
	}
	if topic == "" {
		logger.Errorf("[run %s] failed to generate learning topic", runID)
		return 0, 0, ErrNoContent
	}

	recipients, err := s.users.List(ctx, "")
	if err != nil {
		logger.Errorf("[run %s] error fetching users: %v", runID, err)
		return 0, 0, err
	}
	if len(recipients) == 0 {
		logger.Warnf("[run %s] no users found to notify", runID)
		return 0, 0, nil
	}

	// Send to each recipient independently; wait for all attempts to settle
	// before tallying. One failure never aborts the others.
	results := make([]bool, len(recipients))
	var wg sync.WaitGroup
	for i, u := range recipients {
		wg.Add(1)
		go func(i int, u models.User) {
			defer wg.Done()
			ok := s.mailer.SendEmail(ctx, u.Email, dailySubject, topic)
			if ok {
				logger.Infof("[run %s] notification sent to %s", runID, u.Email)
			} else {
				logger.Errorf("[run %s] failed to send notification to %s", runID, u.Email)
			}
			results[i] = ok
		}(i, u)
	}
	wg.Wait()

	successCount := 0
	for _, ok := range results {
		if ok {
			successCount++
		}
	}
	logger.Infof("[run %s] daily notifications completed. %d/%d emails sent successfully",
		runID, successCount, len(recipients))
	return successCount, len(recipients), nil
}

// SendTestNotification sends a placeholder topic to one address, bypassing
// generation. It reports the outcome as a bool and never fails its caller.
func (s *Service) SendTestNotification(ctx context.Context, email string) bool {
	return s.mailer.SendEmail(ctx, email, testSubject, testTopic)
}
