package transcription

import (
	"context"
	"fmt"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
	"github.com/meetinglab/meeting-insights/pkg/config"
)

// AssemblyAIProvider transcribes audio through the AssemblyAI SDK.
type AssemblyAIProvider struct {
	client *aai.Client
	logger *zap.Logger
}

// NewAssemblyAIProvider creates a provider using the configured API key.
func NewAssemblyAIProvider(cfg *config.AssemblyAIConfig, logger *zap.Logger) *AssemblyAIProvider {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	return &AssemblyAIProvider{
		client: aai.NewClient(apiKey),
		logger: logger,
	}
}

// Transcribe submits the audio URL and waits for the completed transcript.
func (p *AssemblyAIProvider) Transcribe(ctx context.Context, audioURL string) (*entities.TranscriptionResult, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels:     aai.Bool(true),
		LanguageDetection: aai.Bool(true),
	}

	transcript, err := p.client.Transcripts.TranscribeFromURL(ctx, audioURL, params)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai transcription failed: %s", msg)
	}

	result := &entities.TranscriptionResult{
		Language: string(transcript.LanguageCode),
		Segments: mapUtterances(transcript.Utterances),
	}
	if transcript.Text != nil {
		result.Transcript = *transcript.Text
	}
	if transcript.AudioDuration != nil {
		result.Duration = *transcript.AudioDuration
	}
	if len(result.Segments) == 0 {
		result.Segments = mapWords(transcript.Words)
	}

	if p.logger != nil {
		p.logger.Info("transcription completed",
			zap.String("language", result.Language),
			zap.Int("segments", len(result.Segments)),
			zap.Float64("duration", result.Duration),
		)
	}
	return result, nil
}

// mapUtterances converts SDK utterances to segments, converting start and
// end times from milliseconds to seconds.
func mapUtterances(utterances []aai.TranscriptUtterance) []entities.Segment {
	segments := make([]entities.Segment, 0, len(utterances))
	for _, u := range utterances {
		seg := entities.Segment{}
		if u.Text != nil {
			seg.Text = *u.Text
		}
		if u.Start != nil {
			seg.Start = float64(*u.Start) / 1000.0
		}
		if u.End != nil {
			seg.End = float64(*u.End) / 1000.0
		}
		if u.Confidence != nil {
			seg.Confidence = *u.Confidence
		}
		segments = append(segments, seg)
	}
	return segments
}

// mapWords groups word-level timestamps into sentence-like segments,
// splitting on terminal punctuation. Used when the transcript carries no
// utterances.
func mapWords(words []aai.TranscriptWord) []entities.Segment {
	var segments []entities.Segment
	var parts []string
	var start, end float64
	var confSum float64
	open := false

	flush := func() {
		if !open {
			return
		}
		segments = append(segments, entities.Segment{
			Start:      start,
			End:        end,
			Text:       strings.Join(parts, " "),
			Confidence: confSum / float64(len(parts)),
		})
		parts = nil
		confSum = 0
		open = false
	}

	for _, w := range words {
		if w.Text == nil {
			continue
		}
		if !open {
			open = true
			if w.Start != nil {
				start = float64(*w.Start) / 1000.0
			}
		}
		parts = append(parts, *w.Text)
		if w.End != nil {
			end = float64(*w.End) / 1000.0
		}
		if w.Confidence != nil {
			confSum += *w.Confidence
		}
		if strings.HasSuffix(*w.Text, ".") || strings.HasSuffix(*w.Text, "?") || strings.HasSuffix(*w.Text, "!") {
			flush()
		}
	}
	flush()
	return segments
}
