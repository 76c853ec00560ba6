package analytics

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// Mood-shift detection parameters. Shifts are only evaluated once the
// meeting has more than minSegmentsForMoodShifts scored segments.
const (
	minSegmentsForMoodShifts = 5
	moodShiftThreshold       = 0.30
)

// Insight template thresholds for the overall tone split.
const (
	positiveToneThreshold = 0.10
	negativeToneThreshold = -0.10
)

// SentimentAnalyzer produces the meeting sentiment report.
type SentimentAnalyzer struct {
	scorer PolarityScorer
	logger *zap.Logger
}

// NewSentimentAnalyzer creates a sentiment analyzer backed by the given scorer.
func NewSentimentAnalyzer(scorer PolarityScorer, logger *zap.Logger) *SentimentAnalyzer {
	return &SentimentAnalyzer{scorer: scorer, logger: logger}
}

// Analyze computes overall sentiment, the per-segment timeline, per-speaker
// statistics, mood shifts, insights, and the narrative summary. Missing input
// yields a report with the Error field set rather than a Go error.
func (a *SentimentAnalyzer) Analyze(ctx context.Context, transcript string, segments []entities.Segment) entities.SentimentReport {
	if transcript == "" {
		return entities.SentimentReport{Error: "No transcript provided"}
	}

	overall, err := a.scorer.Score(ctx, transcript)
	if err != nil {
		if a.logger != nil {
			a.logger.Error("overall sentiment scoring failed", zap.Error(err))
		}
		return entities.SentimentReport{Error: fmt.Sprintf("Sentiment analysis failed: %v", err)}
	}

	scored := a.scoreSegments(ctx, segments)
	timeline := buildTimeline(scored)
	speakers, order := a.speakerSentiments(scored)
	insights := buildInsights(overall, scored, speakers, order)

	return entities.SentimentReport{
		OverallSentiment:  &overall,
		MeetingMood:       ClassifyMood(overall.Compound),
		SentimentTimeline: timeline,
		SpeakerSentiments: speakers,
		SegmentSentiments: scored,
		Insights:          insights,
		AnalysisSummary:   buildSummary(overall, speakers, order),
	}
}

// scoreSegments scores every segment with non-empty text. Segments the
// scorer fails on are skipped, not propagated.
func (a *SentimentAnalyzer) scoreSegments(ctx context.Context, segments []entities.Segment) []entities.SegmentSentiment {
	scored := make([]entities.SegmentSentiment, 0, len(segments))
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		score, err := a.scorer.Score(ctx, seg.Text)
		if err != nil {
			if a.logger != nil {
				a.logger.Warn("segment scoring failed, skipping segment",
					zap.Float64("start", seg.Start),
					zap.Error(err),
				)
			}
			continue
		}
		scored = append(scored, entities.SegmentSentiment{
			Start:     seg.Start,
			End:       seg.End,
			Text:      seg.Text,
			Sentiment: score,
			Speaker:   seg.Speaker,
			Mood:      ClassifyMood(score.Compound),
		})
	}
	return scored
}

func buildTimeline(scored []entities.SegmentSentiment) []entities.TimelinePoint {
	if len(scored) == 0 {
		return nil
	}
	timeline := make([]entities.TimelinePoint, 0, len(scored))
	for i, seg := range scored {
		timeline = append(timeline, entities.TimelinePoint{
			Timestamp:      seg.Start,
			SentimentScore: seg.Sentiment.Compound,
			Mood:           seg.Mood,
			Speaker:        seg.Speaker,
			SegmentIndex:   i,
		})
	}
	return timeline
}

// speakerSentiments groups scored segments by speaker. The returned order
// slice preserves first-insertion order so downstream tie-breaks stay
// deterministic for a given input order.
func (a *SentimentAnalyzer) speakerSentiments(scored []entities.SegmentSentiment) (map[string]entities.SpeakerSentiment, []string) {
	grouped := make(map[string][]float64)
	var order []string
	for _, seg := range scored {
		if _, ok := grouped[seg.Speaker]; !ok {
			order = append(order, seg.Speaker)
		}
		grouped[seg.Speaker] = append(grouped[seg.Speaker], seg.Sentiment.Compound)
	}

	result := make(map[string]entities.SpeakerSentiment, len(grouped))
	for _, speaker := range order {
		scores := grouped[speaker]
		avg := mean(scores)
		trend := make([]float64, len(scores))
		for i, s := range scores {
			trend[i] = round3(s)
		}
		result[speaker] = entities.SpeakerSentiment{
			AvgSentiment:   round3(avg),
			SentimentTrend: trend,
			Mood:           ClassifyMood(avg),
			SentimentRange: entities.SentimentRange{
				Min: round3(minOf(scores)),
				Max: round3(maxOf(scores)),
				Std: round3(stdDev(scores)),
			},
			TotalSegments: len(scores),
		}
	}
	return result, order
}

func buildInsights(overall entities.PolarityScore, scored []entities.SegmentSentiment, speakers map[string]entities.SpeakerSentiment, order []string) *entities.MeetingInsights {
	insights := &entities.MeetingInsights{
		MoodChanges:     []entities.MoodChange{},
		Recommendations: []string{},
	}

	switch {
	case overall.Compound > positiveToneThreshold:
		insights.OverallTone = "The meeting had a positive and collaborative atmosphere."
	case overall.Compound < negativeToneThreshold:
		insights.OverallTone = "The meeting showed some tension or negative sentiment."
	default:
		insights.OverallTone = "The meeting maintained a neutral, professional tone."
	}

	if len(scored) > minSegmentsForMoodShifts {
		for i := 1; i < len(scored); i++ {
			change := scored[i].Sentiment.Compound - scored[i-1].Sentiment.Compound
			if math.Abs(change) > moodShiftThreshold {
				changeType := "negative"
				if change > 0 {
					changeType = "positive"
				}
				insights.MoodChanges = append(insights.MoodChanges, entities.MoodChange{
					Timestamp:  scored[i].Start,
					ChangeType: changeType,
					Magnitude:  math.Abs(change),
					Speaker:    scored[i].Speaker,
				})
			}
		}
	}

	if len(order) > 0 {
		mostPositive, mostNegative := order[0], order[0]
		for _, speaker := range order[1:] {
			if speakers[speaker].AvgSentiment > speakers[mostPositive].AvgSentiment {
				mostPositive = speaker
			}
			if speakers[speaker].AvgSentiment < speakers[mostNegative].AvgSentiment {
				mostNegative = speaker
			}
		}
		insights.SpeakerDynamics = &entities.SpeakerDynamics{
			MostPositive:    mostPositive,
			MostNegative:    mostNegative,
			SentimentSpread: round3(speakers[mostPositive].AvgSentiment - speakers[mostNegative].AvgSentiment),
		}
	}

	if overall.Compound < negativeToneThreshold {
		insights.Recommendations = append(insights.Recommendations,
			"Consider addressing concerns raised during the meeting",
			"Follow up individually with participants who seemed disengaged",
		)
	}
	if len(insights.MoodChanges) > 3 {
		insights.Recommendations = append(insights.Recommendations,
			"Meeting had multiple mood shifts - consider shorter, more focused sessions",
		)
	}

	return insights
}

func buildSummary(overall entities.PolarityScore, speakers map[string]entities.SpeakerSentiment, order []string) string {
	var parts []string

	switch {
	case overall.Compound > positiveToneThreshold:
		parts = append(parts, "The meeting had an overall positive tone")
	case overall.Compound < negativeToneThreshold:
		parts = append(parts, "The meeting showed some negative sentiment")
	default:
		parts = append(parts, "The meeting maintained a neutral tone")
	}

	parts = append(parts, fmt.Sprintf(
		"with %.0f%% positive, %.0f%% negative, and %.0f%% neutral language",
		overall.Pos*100, overall.Neg*100, overall.Neu*100,
	))

	if len(order) > 0 {
		positive, negative := 0, 0
		for _, speaker := range order {
			switch speakers[speaker].Mood {
			case entities.MoodPositive:
				positive++
			case entities.MoodNegative:
				negative++
			}
		}
		if positive > negative {
			parts = append(parts, fmt.Sprintf("Most participants (%d/%d) expressed positive sentiment", positive, len(order)))
		} else if negative > positive {
			parts = append(parts, fmt.Sprintf("Several participants (%d/%d) showed negative sentiment", negative, len(order)))
		}
	}

	return strings.Join(parts, ". ") + "."
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
