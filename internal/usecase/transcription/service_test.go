package transcription

import (
	"context"
	"errors"
	"testing"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

type stubProvider struct {
	result *entities.TranscriptionResult
	err    error
}

func (s *stubProvider) Transcribe(ctx context.Context, audioURL string) (*entities.TranscriptionResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestServiceTranscribe_LabelsAndCounts(t *testing.T) {
	provider := &stubProvider{result: &entities.TranscriptionResult{
		Transcript: "hello hi there go on",
		Segments: []entities.Segment{
			{Start: 0, End: 1, Text: "hello"},
			{Start: 4, End: 5, Text: "hi there"},
			{Start: 4.5, End: 5.5, Text: "go on"},
		},
		Duration: 5.5,
	}}

	svc := NewService(provider, nil)
	result, err := svc.Transcribe(context.Background(), "https://example.com/audio.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Speaker_1", "Speaker_2", "Speaker_2"}
	for i, w := range want {
		if result.Segments[i].Speaker != w {
			t.Errorf("segment %d labeled %q, want %q", i, result.Segments[i].Speaker, w)
		}
	}
	if result.SpeakerCount != 2 {
		t.Errorf("expected 2 speakers, got %d", result.SpeakerCount)
	}
}

func TestServiceTranscribe_JoinsTranscriptWhenEmpty(t *testing.T) {
	provider := &stubProvider{result: &entities.TranscriptionResult{
		Segments: []entities.Segment{
			{Start: 0, End: 1, Text: "first part"},
			{Start: 1, End: 2, Text: ""},
			{Start: 2, End: 3, Text: "second part"},
		},
	}}

	svc := NewService(provider, nil)
	result, err := svc.Transcribe(context.Background(), "https://example.com/audio.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Transcript != "first part second part" {
		t.Errorf("unexpected joined transcript %q", result.Transcript)
	}
}

func TestServiceTranscribe_ProviderError(t *testing.T) {
	wantErr := errors.New("upstream down")
	svc := NewService(&stubProvider{err: wantErr}, nil)

	_, err := svc.Transcribe(context.Background(), "https://example.com/audio.mp3")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestServiceTranscribe_NoProvider(t *testing.T) {
	svc := NewService(nil, nil)
	if _, err := svc.Transcribe(context.Background(), "https://example.com/audio.mp3"); err == nil {
		t.Fatal("expected an error when no provider is configured")
	}
}
