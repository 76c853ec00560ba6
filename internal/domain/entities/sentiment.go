package entities

// Mood labels derived from compound polarity scores.
const (
	MoodPositive = "Positive"
	MoodNeutral  = "Neutral"
	MoodNegative = "Negative"
)

// PolarityScore is the output of the polarity-scoring collaborator.
// pos/neu/neg are fractions in [0,1] summing to 1; compound is in [-1,1].
type PolarityScore struct {
	Pos      float64 `json:"pos"`
	Neu      float64 `json:"neu"`
	Neg      float64 `json:"neg"`
	Compound float64 `json:"compound"`
}

// Entity is a named entity returned by the NER collaborator.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Entity labels the pipeline cares about.
const (
	EntityLabelPerson = "PERSON"
	EntityLabelDate   = "DATE"
)

// SegmentSentiment is a scored transcript segment.
type SegmentSentiment struct {
	Start     float64       `json:"start"`
	End       float64       `json:"end"`
	Text      string        `json:"text"`
	Sentiment PolarityScore `json:"sentiment"`
	Speaker   string        `json:"speaker"`
	Mood      string        `json:"mood"`
}

// TimelinePoint is one entry in the meeting sentiment timeline.
// SegmentIndex counts positions within the scored subsequence only;
// segments skipped for empty text are not reflected.
type TimelinePoint struct {
	Timestamp      float64 `json:"timestamp"`
	SentimentScore float64 `json:"sentiment_score"`
	Mood           string  `json:"mood"`
	Speaker        string  `json:"speaker"`
	SegmentIndex   int     `json:"segment_index"`
}

// SentimentRange holds the spread of a speaker's compound scores.
type SentimentRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Std float64 `json:"std"`
}

// SpeakerSentiment aggregates compound scores for one speaker.
type SpeakerSentiment struct {
	AvgSentiment   float64        `json:"avg_sentiment"`
	SentimentTrend []float64      `json:"sentiment_trend"`
	Mood           string         `json:"mood"`
	SentimentRange SentimentRange `json:"sentiment_range"`
	TotalSegments  int            `json:"total_segments"`
}

// MoodChange is a significant sentiment shift between consecutive scored
// segments. Recomputed per analysis call, never persisted.
type MoodChange struct {
	Timestamp  float64 `json:"timestamp"`
	ChangeType string  `json:"change_type"` // "positive" or "negative"
	Magnitude  float64 `json:"magnitude"`
	Speaker    string  `json:"speaker"`
}

// SpeakerDynamics names the extremes of per-speaker average sentiment.
type SpeakerDynamics struct {
	MostPositive    string  `json:"most_positive"`
	MostNegative    string  `json:"most_negative"`
	SentimentSpread float64 `json:"sentiment_spread"`
}

// MeetingInsights carries template-generated observations about meeting dynamics.
type MeetingInsights struct {
	OverallTone     string           `json:"overall_tone"`
	MoodChanges     []MoodChange     `json:"mood_changes"`
	SpeakerDynamics *SpeakerDynamics `json:"speaker_dynamics,omitempty"`
	Recommendations []string         `json:"recommendations"`
}

// SentimentReport is the full output of meeting sentiment analysis.
// A non-empty Error field marks a degraded result; callers branch on it
// instead of handling a Go error.
type SentimentReport struct {
	OverallSentiment  *PolarityScore              `json:"overall_sentiment,omitempty"`
	MeetingMood       string                      `json:"meeting_mood,omitempty"`
	SentimentTimeline []TimelinePoint             `json:"sentiment_timeline,omitempty"`
	SpeakerSentiments map[string]SpeakerSentiment `json:"speaker_sentiments,omitempty"`
	SegmentSentiments []SegmentSentiment          `json:"segment_sentiments,omitempty"`
	Insights          *MeetingInsights            `json:"insights,omitempty"`
	AnalysisSummary   string                      `json:"analysis_summary,omitempty"`
	Error             string                      `json:"error,omitempty"`
}
