package topics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/learning-notifier/learning-notifier/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator returns canned text and records the prompt it received.
type fakeGenerator struct {
	lastPrompt string
	text       string
	err        error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.text, f.err
}

const wellFormed = `---

**Topic Area:** [System Design]
**Title:** [Designing a Rate Limiter]

**📄 Description:**
Why rate limiting matters.
`

func TestExtractors(t *testing.T) {
	assert.Equal(t, "System Design", ExtractTopicArea(wellFormed))
	assert.Equal(t, "Designing a Rate Limiter", ExtractTitle(wellFormed))

	// missing markers degrade to the defaults without failing
	assert.Equal(t, "General", ExtractTopicArea("nothing structured here"))
	assert.Equal(t, "Daily Learning Topic", ExtractTitle("nothing structured here"))
	assert.Equal(t, "General", ExtractTopicArea(""))
	assert.Equal(t, "Daily Learning Topic", ExtractTitle(""))

	// bracketed values are trimmed
	assert.Equal(t, "DSA", ExtractTopicArea("**Topic Area:** [ DSA ]"))
}

func TestLearningPrompt(t *testing.T) {
	// empty history: valid prompt with no avoid-list
	p := LearningPrompt(nil)
	assert.Contains(t, p, "Generate NEW and UNIQUE daily learning content")
	assert.Contains(t, p, "### **Required Response Format**")
	assert.NotContains(t, p, "PREVIOUS CONTENT TO AVOID")

	// history embeds a numbered avoid-list
	p = LearningPrompt([]string{"Event Loop Internals", "Sharding Basics"})
	assert.Contains(t, p, "PREVIOUS CONTENT TO AVOID")
	assert.Contains(t, p, "1. Event Loop Internals")
	assert.Contains(t, p, "2. Sharding Basics")
}

func TestGenerateContentPersistsExtractedFields(t *testing.T) {
	gen := &fakeGenerator{text: wellFormed}
	repo := content.NewMemoryRepository()
	contentSvc := content.NewService(repo)
	svc := NewService(gen, contentSvc, nil)

	raw, err := svc.GenerateContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wellFormed, raw)

	// saved record carries the extracted fields; not yet marked used, so it
	// is only visible once flagged
	all, err := repo.FindRecentUsed(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGenerateContentWithEmptyHistory(t *testing.T) {
	gen := &fakeGenerator{text: wellFormed}
	svc := NewService(gen, content.NewService(content.NewMemoryRepository()), nil)

	_, err := svc.GenerateContent(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, gen.lastPrompt, "PREVIOUS CONTENT TO AVOID")
}

func TestGenerateContentEmbedsRecentTitles(t *testing.T) {
	repo := content.NewMemoryRepository()
	contentSvc := content.NewService(repo)
	ctx := context.Background()

	old, err := contentSvc.Save(ctx, "Old Topic", "text", "DSA")
	require.NoError(t, err)
	contentSvc.MarkUsed(ctx, old.ID.Hex())

	gen := &fakeGenerator{text: wellFormed}
	svc := NewService(gen, contentSvc, nil)
	_, err = svc.GenerateContent(ctx)
	require.NoError(t, err)
	assert.True(t, strings.Contains(gen.lastPrompt, "1. Old Topic"))
}

func TestGenerateContentPropagatesAPIFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream down")}
	repo := content.NewMemoryRepository()
	svc := NewService(gen, content.NewService(repo), nil)

	_, err := svc.GenerateContent(context.Background())
	assert.Error(t, err)
}
