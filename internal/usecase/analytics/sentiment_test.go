package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

type stubScorer struct {
	scores map[string]entities.PolarityScore
	failOn map[string]bool
	err    error
}

func (s *stubScorer) Score(_ context.Context, text string) (entities.PolarityScore, error) {
	if s.err != nil {
		return entities.PolarityScore{}, s.err
	}
	if s.failOn[text] {
		return entities.PolarityScore{}, errors.New("scoring failed")
	}
	return s.scores[text], nil
}

func TestSentimentAnalyze_EmptyTranscript(t *testing.T) {
	a := NewSentimentAnalyzer(&stubScorer{}, nil)

	report := a.Analyze(context.Background(), "", nil)
	if report.Error != "No transcript provided" {
		t.Fatalf("expected input error, got %q", report.Error)
	}
	if report.OverallSentiment != nil {
		t.Fatal("expected no overall sentiment on input error")
	}
}

func TestSentimentAnalyze_ScorerFailure(t *testing.T) {
	a := NewSentimentAnalyzer(&stubScorer{err: errors.New("nlp down")}, nil)

	report := a.Analyze(context.Background(), "some transcript", nil)
	if !strings.HasPrefix(report.Error, "Sentiment analysis failed:") {
		t.Fatalf("expected failure error, got %q", report.Error)
	}
}

func TestSentimentAnalyze_Report(t *testing.T) {
	transcript := "great meeting overall but some concerns"
	scorer := &stubScorer{
		scores: map[string]entities.PolarityScore{
			transcript:          {Pos: 0.5, Neu: 0.4, Neg: 0.1, Compound: 0.42},
			"I love this plan":  {Pos: 0.7, Neu: 0.3, Compound: 0.8},
			"this part worries": {Neg: 0.6, Neu: 0.4, Compound: -0.4},
			"fine either way":   {Neu: 1.0, Compound: 0.0},
		},
		failOn: map[string]bool{"broken segment": true},
	}
	segments := []entities.Segment{
		{Start: 0, End: 2, Text: "I love this plan", Speaker: "Speaker_1"},
		{Start: 2, End: 4, Text: "", Speaker: "Speaker_1"},
		{Start: 4, End: 6, Text: "broken segment", Speaker: "Speaker_2"},
		{Start: 6, End: 8, Text: "this part worries", Speaker: "Speaker_2"},
		{Start: 8, End: 10, Text: "fine either way", Speaker: "Speaker_1"},
	}

	report := NewSentimentAnalyzer(scorer, nil).Analyze(context.Background(), transcript, segments)
	if report.Error != "" {
		t.Fatalf("unexpected error: %q", report.Error)
	}
	if report.MeetingMood != entities.MoodPositive {
		t.Errorf("expected Positive mood, got %q", report.MeetingMood)
	}

	// empty and failing segments are excluded from the timeline, and
	// segment indexes count the scored subsequence
	if len(report.SentimentTimeline) != 3 {
		t.Fatalf("expected 3 timeline points, got %d", len(report.SentimentTimeline))
	}
	for i, point := range report.SentimentTimeline {
		if point.SegmentIndex != i {
			t.Errorf("timeline point %d has index %d", i, point.SegmentIndex)
		}
	}
	if report.SentimentTimeline[1].Timestamp != 6 {
		t.Errorf("expected second point at t=6, got %v", report.SentimentTimeline[1].Timestamp)
	}

	s1 := report.SpeakerSentiments["Speaker_1"]
	if s1.TotalSegments != 2 {
		t.Errorf("expected 2 scored segments for Speaker_1, got %d", s1.TotalSegments)
	}
	if s1.AvgSentiment != 0.4 {
		t.Errorf("expected Speaker_1 average 0.4, got %v", s1.AvgSentiment)
	}
	if s1.Mood != entities.MoodPositive {
		t.Errorf("expected Speaker_1 Positive, got %q", s1.Mood)
	}
	if s1.SentimentRange.Min != 0 || s1.SentimentRange.Max != 0.8 {
		t.Errorf("unexpected Speaker_1 range: %+v", s1.SentimentRange)
	}

	if report.Insights == nil {
		t.Fatal("expected insights")
	}
	dyn := report.Insights.SpeakerDynamics
	if dyn == nil || dyn.MostPositive != "Speaker_1" || dyn.MostNegative != "Speaker_2" {
		t.Fatalf("unexpected speaker dynamics: %+v", dyn)
	}
	if !strings.HasSuffix(report.AnalysisSummary, ".") {
		t.Errorf("summary should end with a period: %q", report.AnalysisSummary)
	}
	if !strings.Contains(report.AnalysisSummary, "positive tone") {
		t.Errorf("expected positive tone wording, got %q", report.AnalysisSummary)
	}
}

func TestSentimentAnalyze_MoodShifts(t *testing.T) {
	texts := []string{"s0", "s1", "s2", "s3", "s4", "s5"}
	scores := map[string]entities.PolarityScore{
		"overall": {Compound: 0.0, Neu: 1.0},
		"s0":      {Compound: 0.5},
		"s1":      {Compound: 0.1}, // -0.4 shift
		"s2":      {Compound: 0.15},
		"s3":      {Compound: 0.6}, // +0.45 shift
		"s4":      {Compound: 0.55},
		"s5":      {Compound: 0.5},
	}
	var segments []entities.Segment
	for i, text := range texts {
		segments = append(segments, entities.Segment{
			Start:   float64(i),
			End:     float64(i + 1),
			Text:    text,
			Speaker: "Speaker_1",
		})
	}

	report := NewSentimentAnalyzer(&stubScorer{scores: scores}, nil).
		Analyze(context.Background(), "overall", segments)

	changes := report.Insights.MoodChanges
	if len(changes) != 2 {
		t.Fatalf("expected 2 mood changes, got %d", len(changes))
	}
	if changes[0].ChangeType != "negative" || changes[0].Timestamp != 1 {
		t.Errorf("unexpected first change: %+v", changes[0])
	}
	if changes[1].ChangeType != "positive" || changes[1].Timestamp != 3 {
		t.Errorf("unexpected second change: %+v", changes[1])
	}
}

func TestSentimentAnalyze_NoMoodShiftsForShortMeetings(t *testing.T) {
	scores := map[string]entities.PolarityScore{
		"overall": {Compound: 0.0, Neu: 1.0},
		"a":       {Compound: 0.9},
		"b":       {Compound: -0.9},
	}
	segments := []entities.Segment{
		{Start: 0, End: 1, Text: "a", Speaker: "Speaker_1"},
		{Start: 1, End: 2, Text: "b", Speaker: "Speaker_1"},
	}

	report := NewSentimentAnalyzer(&stubScorer{scores: scores}, nil).
		Analyze(context.Background(), "overall", segments)
	if len(report.Insights.MoodChanges) != 0 {
		t.Fatalf("expected no mood changes below the segment minimum, got %d", len(report.Insights.MoodChanges))
	}
}

func TestSentimentAnalyze_NegativeRecommendations(t *testing.T) {
	scores := map[string]entities.PolarityScore{
		"overall": {Compound: -0.5, Neg: 0.6, Neu: 0.4},
	}
	report := NewSentimentAnalyzer(&stubScorer{scores: scores}, nil).
		Analyze(context.Background(), "overall", nil)

	if report.MeetingMood != entities.MoodNegative {
		t.Errorf("expected Negative mood, got %q", report.MeetingMood)
	}
	if len(report.Insights.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(report.Insights.Recommendations))
	}
	if !strings.Contains(report.Insights.OverallTone, "tension") {
		t.Errorf("unexpected tone: %q", report.Insights.OverallTone)
	}
}
