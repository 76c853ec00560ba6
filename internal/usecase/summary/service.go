package summary

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Summarizer is the abstractive summarization collaborator.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Summary sizing defaults, in model tokens.
const (
	DefaultMaxLength = 200
	DefaultMinLength = 50
)

// Chunking parameters for long transcripts, in words.
const (
	chunkInputThreshold = 1000
	chunkSize           = 800
	minChunkWords       = 30
	recombineThreshold  = 150
	minTranscriptLength = 50
)

// Fixed fallback messages, returned instead of errors so the summary slot
// in a digest is always populated.
const (
	msgTooShort    = "Meeting too short to summarize effectively."
	msgUnavailable = "Summarization service unavailable."
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	fillerRe     = regexp.MustCompile(`(?i)\b(um|uh|like|you know|so)\b`)
)

// Service generates meeting summaries through the summarization collaborator.
type Service struct {
	summarizer Summarizer
	logger     *zap.Logger
}

// NewService creates a summary service.
func NewService(summarizer Summarizer, logger *zap.Logger) *Service {
	return &Service{summarizer: summarizer, logger: logger}
}

// Generate produces a summary of the transcript. Long transcripts are
// chunked, summarized per chunk, and recombined. Failures degrade to a
// fixed message string; this method never returns an error.
func (s *Service) Generate(ctx context.Context, transcript string) string {
	if len(strings.TrimSpace(transcript)) < minTranscriptLength {
		return msgTooShort
	}
	if s.summarizer == nil {
		return msgUnavailable
	}

	cleaned := CleanText(transcript)
	words := strings.Fields(cleaned)

	if len(words) <= chunkInputThreshold {
		result, err := s.summarizer.Summarize(ctx, cleaned, DefaultMaxLength, DefaultMinLength)
		if err != nil {
			return s.degraded(err)
		}
		return result
	}

	chunks := chunkWords(words, chunkSize)
	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if len(strings.Fields(chunk)) <= minChunkWords {
			continue
		}
		part, err := s.summarizer.Summarize(ctx, chunk, DefaultMaxLength/len(chunks), DefaultMinLength/len(chunks))
		if err != nil {
			return s.degraded(err)
		}
		summaries = append(summaries, part)
	}

	combined := strings.Join(summaries, " ")
	if len(strings.Fields(combined)) > recombineThreshold {
		final, err := s.summarizer.Summarize(ctx, combined, DefaultMaxLength, DefaultMinLength)
		if err != nil {
			return s.degraded(err)
		}
		return final
	}
	return combined
}

func (s *Service) degraded(err error) string {
	if s.logger != nil {
		s.logger.Error("summarization failed", zap.Error(err))
	}
	return fmt.Sprintf("Error generating summary: %v", err)
}

// CleanText collapses whitespace and strips common filler words so the
// summarization model gets denser input.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = fillerRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func chunkWords(words []string, size int) []string {
	var chunks []string
	for i := 0; i < len(words); i += size {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
