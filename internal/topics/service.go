package topics

import (
	"context"
	"regexp"
	"strings"

	"github.com/learning-notifier/learning-notifier/internal/content"
	"github.com/learning-notifier/learning-notifier/internal/genai"
	"github.com/learning-notifier/learning-notifier/internal/models"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
	"github.com/learning-notifier/learning-notifier/pkg/metrics"
)

const (
	recentTitleWindow = 5

	defaultTopicArea = "General"
	defaultTitle     = "Daily Learning Topic"
)

var (
	topicAreaRe = regexp.MustCompile(`\*\*Topic Area:\*\*\s*\[([^\]]+)\]`)
	titleRe     = regexp.MustCompile(`\*\*Title:\*\*\s*\[([^\]]+)\]`)
)

// Archiver stores a copy of generated content outside the primary store.
// Implementations must never fail the generation path.
type Archiver interface {
	ArchiveTopic(ctx context.Context, c *models.Content)
}

// Service generates learning topics: it builds a prompt from recent history,
// calls the text-generation API, extracts structured fields, and persists the
// result.
type Service struct {
	gen     genai.Generator
	content *content.Service
	archive Archiver // optional
}

func NewService(gen genai.Generator, contentSvc *content.Service, archive Archiver) *Service {
	return &Service{gen: gen, content: contentSvc, archive: archive}
}

// GenerateContent returns the full raw generated text. Generation failures
// propagate; the caller sees the run as failed.
func (s *Service) GenerateContent(ctx context.Context) (string, error) {
	logger.Infof("generating learning topic")

	recent := s.content.Recent(ctx, recentTitleWindow)
	previousTitles := make([]string, 0, len(recent))
	for _, c := range recent {
		previousTitles = append(previousTitles, c.Title)
	}

	prompt := LearningPrompt(previousTitles)

	raw, err := s.gen.GenerateContent(ctx, prompt)
	if err != nil {
		metrics.TopicsFailed.Inc()
		logger.Errorf("error generating topic: %v", err)
		return "", err
	}

	topicArea := ExtractTopicArea(raw)
	title := ExtractTitle(raw)

	saved, err := s.content.Save(ctx, title, raw, topicArea)
	if err != nil {
		metrics.TopicsFailed.Inc()
		return "", err
	}
	metrics.TopicsGenerated.Inc()

	if s.archive != nil {
		s.archive.ArchiveTopic(ctx, saved)
	}

	return raw, nil
}

// ExtractTopicArea pulls the bracketed value of the first Topic Area marker.
// A missing marker degrades to "General".
func ExtractTopicArea(body string) string {
	if m := topicAreaRe.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	return defaultTopicArea
}

// ExtractTitle pulls the bracketed value of the first Title marker. A missing
// marker degrades to "Daily Learning Topic".
func ExtractTitle(body string) string {
	if m := titleRe.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	return defaultTitle
}
