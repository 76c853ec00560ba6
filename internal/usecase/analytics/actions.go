package analytics

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// MaxActionItems caps the extracted list length.
const MaxActionItems = 10

// similarityThreshold is the word-set overlap above which two tasks are
// considered duplicates.
const similarityThreshold = 0.70

var actionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`need to\s+(\w+)`),
	regexp.MustCompile(`should\s+(\w+)`),
	regexp.MustCompile(`will\s+(\w+)`),
	regexp.MustCompile(`going to\s+(\w+)`),
	regexp.MustCompile(`must\s+(\w+)`),
	regexp.MustCompile(`have to\s+(\w+)`),
}

var actionVerbs = []string{
	"send", "email", "call", "schedule", "meet", "review", "update",
	"finish", "complete", "prepare", "submit", "follow up", "contact",
	"create", "build", "develop", "implement", "test", "deploy",
	"research", "analyze", "write", "document", "present", "discuss",
}

// Extractor turns a transcript into a ranked, deduplicated action item list.
type Extractor struct {
	segmenter  SentenceSegmenter
	classifier *Classifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewExtractor creates an action item extractor.
func NewExtractor(segmenter SentenceSegmenter, recognizer EntityRecognizer, logger *zap.Logger) *Extractor {
	return &Extractor{
		segmenter:  segmenter,
		classifier: NewClassifier(recognizer),
		logger:     logger,
		now:        time.Now,
	}
}

// Extract returns up to MaxActionItems tasks found in the transcript,
// sorted by descending priority. Collaborator failure degrades to an
// empty list; callers cannot distinguish "no tasks" from "extraction
// unavailable" at this layer.
func (e *Extractor) Extract(ctx context.Context, transcript string) []entities.ActionItem {
	items := []entities.ActionItem{}
	if transcript == "" || e.segmenter == nil {
		return items
	}

	sentences, err := e.segmenter.Sentences(ctx, transcript)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("sentence segmentation failed, returning no action items", zap.Error(err))
		}
		return items
	}

	extractedAt := e.now()
	for _, sentence := range sentences {
		if len(strings.Fields(sentence)) < 3 {
			continue
		}
		if !isActionBearing(sentence) {
			continue
		}
		items = append(items, entities.ActionItem{
			ID:          len(items) + 1,
			Task:        sentence,
			Assignee:    e.classifier.ExtractPerson(ctx, sentence),
			Deadline:    e.classifier.ExtractDeadline(ctx, sentence),
			Priority:    DeterminePriority(sentence),
			Status:      "pending",
			ExtractedAt: extractedAt,
		})
	}

	items = Deduplicate(items)

	sort.SliceStable(items, func(i, j int) bool {
		return entities.PriorityRank(items[i].Priority) > entities.PriorityRank(items[j].Priority)
	})

	if len(items) > MaxActionItems {
		items = items[:MaxActionItems]
	}
	return items
}

func isActionBearing(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, pattern := range actionPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

// Deduplicate drops items whose lower-cased word set overlaps an
// earlier-kept item's by more than the similarity threshold. Idempotent.
func Deduplicate(items []entities.ActionItem) []entities.ActionItem {
	if len(items) == 0 {
		return items
	}

	unique := make([]entities.ActionItem, 0, len(items))
	var seen []map[string]struct{}

	for _, item := range items {
		words := wordSet(item.Task)
		similar := false
		for _, kept := range seen {
			if overlapRatio(words, kept) > similarityThreshold {
				similar = true
				break
			}
		}
		if !similar {
			unique = append(unique, item)
			seen = append(seen, words)
		}
	}
	return unique
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set[word] = struct{}{}
	}
	return set
}

// overlapRatio is the intersection size divided by the larger set size.
func overlapRatio(a, b map[string]struct{}) float64 {
	larger := len(a)
	if len(b) > larger {
		larger = len(b)
	}
	if larger == 0 {
		return 0
	}
	overlap := 0
	for word := range a {
		if _, ok := b[word]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(larger)
}
