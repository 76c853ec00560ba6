package meeting

import "github.com/meetinglab/meeting-insights/internal/domain/entities"

// TranscribeResponse carries a completed transcription.
type TranscribeResponse struct {
	Transcript   string             `json:"transcript"`
	Segments     []entities.Segment `json:"segments"`
	Language     string             `json:"language,omitempty"`
	Duration     float64            `json:"duration,omitempty"`
	SpeakerCount int                `json:"speaker_count"`
}

// SummarizeResponse carries a generated summary.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ActionsResponse carries extracted action items.
type ActionsResponse struct {
	ActionItems []entities.ActionItem `json:"action_items"`
	Total       int                   `json:"total"`
}

// ProcessResponse aggregates the outputs of the full pipeline.
type ProcessResponse struct {
	Transcript    string                        `json:"transcript"`
	Segments      []entities.Segment            `json:"segments"`
	Summary       string                        `json:"summary"`
	ActionItems   []entities.ActionItem         `json:"action_items"`
	Sentiment     *entities.SentimentReport     `json:"sentiment"`
	Participation *entities.ParticipationReport `json:"participation"`
}
