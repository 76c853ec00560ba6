package meeting

// SegmentPayload is a transcript segment supplied by the client.
type SegmentPayload struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
}

// TranscribeRequest asks for transcription of a hosted audio file.
type TranscribeRequest struct {
	AudioURL string `json:"audio_url" validate:"required,url"`
}

// SummarizeRequest asks for a summary of a transcript.
type SummarizeRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// ActionsRequest asks for action item extraction from a transcript.
type ActionsRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// SentimentRequest asks for sentiment analysis. Segments are optional;
// without them speaker-level analysis is skipped.
type SentimentRequest struct {
	Transcript string           `json:"transcript"`
	Segments   []SegmentPayload `json:"segments,omitempty"`
}

// ParticipationRequest asks for participation analysis over segments.
type ParticipationRequest struct {
	Segments []SegmentPayload `json:"segments" validate:"required,min=1"`
}

// ProcessRequest runs the full pipeline against a hosted audio file.
type ProcessRequest struct {
	AudioURL     string `json:"audio_url" validate:"required,url"`
	MeetingTitle string `json:"meeting_title,omitempty"`
}
