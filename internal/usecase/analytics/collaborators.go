package analytics

import (
	"context"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// SentenceSegmenter splits text into trimmed sentences in document order.
type SentenceSegmenter interface {
	Sentences(ctx context.Context, text string) ([]string, error)
}

// EntityRecognizer returns named entities found in text. An empty result
// is a normal, non-error outcome.
type EntityRecognizer interface {
	Entities(ctx context.Context, text string) ([]entities.Entity, error)
}

// PolarityScorer scores the sentiment polarity of text. Behavior is
// undefined for empty text; callers must not pass it.
type PolarityScorer interface {
	Score(ctx context.Context, text string) (entities.PolarityScore, error)
}
