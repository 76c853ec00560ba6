package analytics

import (
	"context"
	"regexp"
	"strings"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// Compound-score thresholds for mood classification. Shared by every
// component that derives a mood label.
const (
	PositiveMoodThreshold = 0.05
	NegativeMoodThreshold = -0.05
)

// ClassifyMood maps a compound polarity score to a mood label.
func ClassifyMood(compound float64) string {
	switch {
	case compound >= PositiveMoodThreshold:
		return entities.MoodPositive
	case compound <= NegativeMoodThreshold:
		return entities.MoodNegative
	default:
		return entities.MoodNeutral
	}
}

var urgentKeywords = []string{
	"urgent", "asap", "immediately", "critical", "emergency",
	"today", "now", "right away", "high priority",
}

var mediumKeywords = []string{
	"this week", "soon", "next week", "important", "should",
	"needed", "required", "medium priority",
}

// DeterminePriority classifies a sentence by urgency keywords.
// First matching tier wins: High > Medium > Low.
func DeterminePriority(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, kw := range urgentKeywords {
		if strings.Contains(lower, kw) {
			return entities.PriorityHigh
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(lower, kw) {
			return entities.PriorityMedium
		}
	}
	return entities.PriorityLow
}

var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`by\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`(today|tomorrow|this week|next week|end of week|eod|end of day)`),
	regexp.MustCompile(`by\s+(end of|close of business|cob)`),
	regexp.MustCompile(`in\s+(\d+)\s+(days?|weeks?|months?)`),
	regexp.MustCompile(`(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}`),
	regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`),
}

var assignmentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\w+)\s+will`),
	regexp.MustCompile(`(?i)(\w+)\s+should`),
	regexp.MustCompile(`(?i)(\w+)\s+needs? to`),
	regexp.MustCompile(`(?i)assigned to\s+(\w+)`),
	regexp.MustCompile(`(?i)(\w+)'s responsibility`),
}

// Classifier extracts deadlines and assignees from sentences, consulting
// the NER collaborator when lexical patterns find nothing.
type Classifier struct {
	recognizer EntityRecognizer
}

// NewClassifier creates a Classifier backed by the given recognizer.
func NewClassifier(recognizer EntityRecognizer) *Classifier {
	return &Classifier{recognizer: recognizer}
}

// ExtractDeadline finds a deadline phrase in the sentence. Regex patterns
// are tried first; DATE entities from NER are the fallback. NER failure is
// treated as no match, never surfaced.
func (c *Classifier) ExtractDeadline(ctx context.Context, sentence string) string {
	lower := strings.ToLower(sentence)
	for _, pattern := range deadlinePatterns {
		if match := pattern.FindString(lower); match != "" {
			return match
		}
	}

	if c.recognizer != nil {
		ents, err := c.recognizer.Entities(ctx, sentence)
		if err == nil {
			for _, ent := range ents {
				if ent.Label == entities.EntityLabelDate {
					return ent.Text
				}
			}
		}
	}

	return entities.NoDeadlineSpecified
}

// ExtractPerson finds the person responsible for a sentence. PERSON
// entities take priority over assignment-phrasing captures.
func (c *Classifier) ExtractPerson(ctx context.Context, sentence string) string {
	var persons []string

	if c.recognizer != nil {
		ents, err := c.recognizer.Entities(ctx, sentence)
		if err == nil {
			for _, ent := range ents {
				if ent.Label == entities.EntityLabelPerson {
					persons = append(persons, ent.Text)
				}
			}
		}
	}

	for _, pattern := range assignmentPatterns {
		if m := pattern.FindStringSubmatch(sentence); m != nil {
			persons = append(persons, m[1])
		}
	}

	if len(persons) > 0 {
		return persons[0]
	}
	return entities.UnassignedAssignee
}
