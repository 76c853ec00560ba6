package entities

// SpeakerStats holds participation metrics for one speaker label.
type SpeakerStats struct {
	TalkTime        float64 `json:"talk_time"`
	TalkPercentage  float64 `json:"talk_percentage"`
	WordCount       int     `json:"word_count"`
	WordPercentage  float64 `json:"word_percentage"`
	Segments        int     `json:"segments"`
	AvgSentiment    float64 `json:"avg_sentiment"`
	Mood            string  `json:"mood"`
	WordsPerSegment float64 `json:"words_per_segment"`
}

// MeetingStats holds meeting-level participation aggregates.
// Most-talkative/most-positive ties resolve to the first speaker encountered
// in segment order.
type MeetingStats struct {
	TotalTime            float64 `json:"total_time"`
	TotalWords           int     `json:"total_words"`
	TotalSpeakers        int     `json:"total_speakers"`
	MostTalkativeSpeaker string  `json:"most_talkative_speaker"`
	MostPositiveSpeaker  string  `json:"most_positive_speaker"`
}

// ParticipationReport is the output of speaker participation analysis.
// A non-empty Error field marks a degraded result.
type ParticipationReport struct {
	SpeakerStats map[string]SpeakerStats `json:"speaker_stats,omitempty"`
	MeetingStats *MeetingStats           `json:"meeting_stats,omitempty"`
	Error        string                  `json:"error,omitempty"`
}
