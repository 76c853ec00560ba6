package analytics

import (
	"context"

	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// ParticipationAnalyzer computes per-speaker talk-time and word-count
// shares plus meeting-level aggregates. Sentiment scores are recomputed
// here independently; no cache is shared with the sentiment analyzer.
type ParticipationAnalyzer struct {
	scorer PolarityScorer
	logger *zap.Logger
}

// NewParticipationAnalyzer creates a participation analyzer.
func NewParticipationAnalyzer(scorer PolarityScorer, logger *zap.Logger) *ParticipationAnalyzer {
	return &ParticipationAnalyzer{scorer: scorer, logger: logger}
}

type speakerAccumulator struct {
	talkTime  float64
	wordCount int
	segments  int
	scores    []float64
}

// Analyze aggregates the labeled segment list into a participation report.
// An empty segment list yields a report with the Error field set.
func (a *ParticipationAnalyzer) Analyze(ctx context.Context, segments []entities.Segment) entities.ParticipationReport {
	if len(segments) == 0 {
		return entities.ParticipationReport{Error: "No segments provided"}
	}

	accumulators := make(map[string]*speakerAccumulator)
	var order []string
	totalTime := 0.0
	totalWords := 0

	for _, seg := range segments {
		speaker := seg.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		acc, ok := accumulators[speaker]
		if !ok {
			acc = &speakerAccumulator{}
			accumulators[speaker] = acc
			order = append(order, speaker)
		}

		duration := seg.Duration()
		words := seg.WordCount()
		totalTime += duration
		totalWords += words

		acc.talkTime += duration
		acc.wordCount += words
		acc.segments++

		if seg.Text != "" && a.scorer != nil {
			score, err := a.scorer.Score(ctx, seg.Text)
			if err != nil {
				if a.logger != nil {
					a.logger.Warn("segment scoring failed during participation analysis",
						zap.String("speaker", speaker),
						zap.Error(err),
					)
				}
			} else {
				acc.scores = append(acc.scores, score.Compound)
			}
		}
	}

	stats := make(map[string]entities.SpeakerStats, len(accumulators))
	for _, speaker := range order {
		acc := accumulators[speaker]

		talkPct := 0.0
		if totalTime > 0 {
			talkPct = acc.talkTime / totalTime * 100
		}
		wordPct := 0.0
		if totalWords > 0 {
			wordPct = float64(acc.wordCount) / float64(totalWords) * 100
		}
		wordsPerSegment := 0.0
		if acc.segments > 0 {
			wordsPerSegment = float64(acc.wordCount) / float64(acc.segments)
		}
		avgSentiment := mean(acc.scores)

		stats[speaker] = entities.SpeakerStats{
			TalkTime:        round2(acc.talkTime),
			TalkPercentage:  round1(talkPct),
			WordCount:       acc.wordCount,
			WordPercentage:  round1(wordPct),
			Segments:        acc.segments,
			AvgSentiment:    round3(avgSentiment),
			Mood:            ClassifyMood(avgSentiment),
			WordsPerSegment: round1(wordsPerSegment),
		}
	}

	mostTalkative, mostPositive := order[0], order[0]
	for _, speaker := range order[1:] {
		if stats[speaker].TalkPercentage > stats[mostTalkative].TalkPercentage {
			mostTalkative = speaker
		}
		if stats[speaker].AvgSentiment > stats[mostPositive].AvgSentiment {
			mostPositive = speaker
		}
	}

	return entities.ParticipationReport{
		SpeakerStats: stats,
		MeetingStats: &entities.MeetingStats{
			TotalTime:            round2(totalTime),
			TotalWords:           totalWords,
			TotalSpeakers:        len(stats),
			MostTalkativeSpeaker: mostTalkative,
			MostPositiveSpeaker:  mostPositive,
		},
	}
}
