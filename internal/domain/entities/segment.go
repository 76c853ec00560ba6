package entities

import "strings"

// Segment is one timed chunk of transcribed speech.
// Start/End are seconds from the beginning of the recording.
type Segment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Speaker    string  `json:"speaker"`
	Confidence float64 `json:"confidence"`
}

// Duration returns the segment length in seconds, clamping malformed
// timings to zero instead of rejecting them.
func (s Segment) Duration() float64 {
	start := s.Start
	if start < 0 {
		start = 0
	}
	end := s.End
	if end < 0 {
		end = 0
	}
	d := end - start
	if d < 0 {
		return 0
	}
	return d
}

// WordCount returns the naive whitespace-delimited word count of the text.
func (s Segment) WordCount() int {
	return len(strings.Fields(s.Text))
}

// TranscriptionResult is the output of the transcription stage.
type TranscriptionResult struct {
	Transcript          string    `json:"transcript"`
	Segments            []Segment `json:"segments"`
	Language            string    `json:"language,omitempty"`
	LanguageProbability float64   `json:"language_probability,omitempty"`
	Duration            float64   `json:"duration"`
	SpeakerCount        int       `json:"speaker_count"`
}
