package transcription

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// Provider is the speech-to-text collaborator. It returns raw timed
// segments without speaker labels; labeling happens here.
type Provider interface {
	Transcribe(ctx context.Context, audioURL string) (*entities.TranscriptionResult, error)
}

// Service runs transcription and applies the speaker assignment heuristic.
type Service struct {
	provider Provider
	logger   *zap.Logger
}

// NewService creates a transcription service.
func NewService(provider Provider, logger *zap.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Transcribe fetches a transcript for the audio URL and labels its
// segments with pseudo-speaker identities.
func (s *Service) Transcribe(ctx context.Context, audioURL string) (*entities.TranscriptionResult, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("transcription provider not configured")
	}

	result, err := s.provider.Transcribe(ctx, audioURL)
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", audioURL, err)
	}

	result.Segments = AssignSpeakers(result.Segments)
	result.SpeakerCount = DistinctSpeakers(result.Segments)
	if result.Transcript == "" {
		result.Transcript = joinSegments(result.Segments)
	}

	if s.logger != nil {
		s.logger.Info("transcription complete",
			zap.Int("segments", len(result.Segments)),
			zap.Int("speakers", result.SpeakerCount),
			zap.Float64("duration", result.Duration),
		)
	}
	return result, nil
}

func joinSegments(segments []entities.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, " ")
}
