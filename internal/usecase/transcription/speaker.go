package transcription

import (
	"fmt"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// speakerGapSeconds is the silence gap after which the next segment is
// attributed to a different speaker.
const speakerGapSeconds = 2.0

// maxSpeakerLabels caps the rotating label pool. Downstream analytics are
// calibrated against at most three recurring labels.
const maxSpeakerLabels = 3

// AssignSpeakers labels a chronologically ordered segment sequence with
// pseudo-speaker identities using a gap-based rule. This is a placeholder
// for real diarization: a gap longer than speakerGapSeconds starts a new
// label cycled through Speaker_1..Speaker_3; anything shorter continues
// the current speaker. The input slice is not modified.
func AssignSpeakers(segments []entities.Segment) []entities.Segment {
	if len(segments) == 0 {
		return nil
	}

	labeled := make([]entities.Segment, len(segments))
	seen := make(map[string]bool)
	current := ""
	lastEnd := 0.0

	for i, seg := range segments {
		start := seg.Start
		if start < 0 {
			start = 0
		}
		end := seg.End
		if end < 0 {
			end = 0
		}

		if i == 0 {
			current = "Speaker_1"
		} else if start-lastEnd > speakerGapSeconds {
			n := len(seen)%maxSpeakerLabels + 1
			current = fmt.Sprintf("Speaker_%d", n)
		}

		labeled[i] = seg
		labeled[i].Speaker = current
		seen[current] = true
		lastEnd = end
	}

	return labeled
}

// DistinctSpeakers counts the distinct speaker labels in a segment list.
func DistinctSpeakers(segments []entities.Segment) int {
	seen := make(map[string]bool)
	for _, seg := range segments {
		if seg.Speaker != "" {
			seen[seg.Speaker] = true
		}
	}
	return len(seen)
}
