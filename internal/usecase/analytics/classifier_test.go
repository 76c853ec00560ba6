package analytics

import (
	"context"
	"testing"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

type stubRecognizer struct {
	entities map[string][]entities.Entity
	err      error
}

func (s *stubRecognizer) Entities(_ context.Context, text string) ([]entities.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entities[text], nil
}

func TestClassifyMood_Boundaries(t *testing.T) {
	cases := []struct {
		compound float64
		want     string
	}{
		{0.05, entities.MoodPositive},
		{0.6, entities.MoodPositive},
		{0.049, entities.MoodNeutral},
		{0.0, entities.MoodNeutral},
		{-0.049, entities.MoodNeutral},
		{-0.05, entities.MoodNegative},
		{-0.9, entities.MoodNegative},
	}
	for _, tc := range cases {
		if got := ClassifyMood(tc.compound); got != tc.want {
			t.Errorf("ClassifyMood(%v) = %q, want %q", tc.compound, got, tc.want)
		}
	}
}

func TestDeterminePriority(t *testing.T) {
	cases := []struct {
		sentence string
		want     string
	}{
		{"This is urgent, fix it now", entities.PriorityHigh},
		{"We need this ASAP", entities.PriorityHigh},
		{"We should wrap this up this week", entities.PriorityMedium},
		{"It would be nice to revisit the logo", entities.PriorityLow},
		// urgent keyword wins even when a medium keyword is also present
		{"This is urgent but could slip to next week", entities.PriorityHigh},
	}
	for _, tc := range cases {
		if got := DeterminePriority(tc.sentence); got != tc.want {
			t.Errorf("DeterminePriority(%q) = %q, want %q", tc.sentence, got, tc.want)
		}
	}
}

func TestExtractDeadline_Patterns(t *testing.T) {
	c := NewClassifier(nil)
	ctx := context.Background()

	cases := []struct {
		sentence string
		want     string
	}{
		{"We must finish the report by Friday", "by friday"},
		{"Let's sync tomorrow about the launch", "tomorrow"},
		{"Submit the draft in 3 days", "in 3 days"},
		{"The audit is due March 15", "march 15"},
		{"Ship it before 12/31/2026", "12/31/2026"},
		{"Let's talk about the roadmap", entities.NoDeadlineSpecified},
	}
	for _, tc := range cases {
		if got := c.ExtractDeadline(ctx, tc.sentence); got != tc.want {
			t.Errorf("ExtractDeadline(%q) = %q, want %q", tc.sentence, got, tc.want)
		}
	}
}

func TestExtractDeadline_NERFallback(t *testing.T) {
	sentence := "The review happens during the retrospective"
	rec := &stubRecognizer{entities: map[string][]entities.Entity{
		sentence: {{Text: "the retrospective", Label: entities.EntityLabelDate}},
	}}
	c := NewClassifier(rec)

	if got := c.ExtractDeadline(context.Background(), sentence); got != "the retrospective" {
		t.Fatalf("expected DATE entity fallback, got %q", got)
	}
}

func TestExtractDeadline_NERFailureSwallowed(t *testing.T) {
	c := NewClassifier(&stubRecognizer{err: context.DeadlineExceeded})

	got := c.ExtractDeadline(context.Background(), "Let's revisit the plan")
	if got != entities.NoDeadlineSpecified {
		t.Fatalf("expected fallback on NER failure, got %q", got)
	}
}

func TestExtractPerson(t *testing.T) {
	ctx := context.Background()

	// PERSON entity takes priority over phrasing captures
	sentence := "Alice will coordinate with the vendor"
	rec := &stubRecognizer{entities: map[string][]entities.Entity{
		sentence: {{Text: "Alice Johnson", Label: entities.EntityLabelPerson}},
	}}
	if got := NewClassifier(rec).ExtractPerson(ctx, sentence); got != "Alice Johnson" {
		t.Fatalf("expected PERSON entity, got %q", got)
	}

	// phrasing capture when NER finds nothing
	c := NewClassifier(&stubRecognizer{})
	if got := c.ExtractPerson(ctx, "Bob will send the notes"); got != "Bob" {
		t.Fatalf("expected capture from assignment phrasing, got %q", got)
	}
	if got := c.ExtractPerson(ctx, "This is assigned to Carol"); got != "Carol" {
		t.Fatalf("expected capture from assigned-to phrasing, got %q", got)
	}

	// nothing found
	if got := c.ExtractPerson(ctx, "The deck looks good"); got != entities.UnassignedAssignee {
		t.Fatalf("expected %q, got %q", entities.UnassignedAssignee, got)
	}
}
