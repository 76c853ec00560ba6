package email

import (
	"strings"
	"testing"
	"time"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

var digestNow = time.Date(2026, time.August, 26, 14, 30, 0, 0, time.UTC)

func sampleDigest() DigestData {
	return DigestData{
		MeetingTitle: "Sprint Planning",
		Summary:      "The team agreed on the sprint scope.",
		MeetingMood:  entities.MoodPositive,
		OverallTone:  "The conversation had a positive tone",
		ActionItems: []entities.ActionItem{
			{Task: "Fix the login outage", Assignee: "Alice", Deadline: "by friday", Priority: entities.PriorityHigh, Status: "pending"},
			{Task: "Update the onboarding docs", Assignee: "Unassigned", Deadline: "No deadline specified", Priority: entities.PriorityLow, Status: "pending"},
		},
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleDigest(), digestNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Sprint Planning",
		"The team agreed on the sprint scope.",
		"Action Items (2 tasks)",
		"priority-high",
		"priority-low",
		"Fix the login outage",
		"😊 Positive",
		"Overall Tone:",
		"Generated by Meeting Insights",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestRenderHTML_NoActionItems(t *testing.T) {
	data := sampleDigest()
	data.ActionItems = nil

	html, err := RenderHTML(data, digestNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "No specific action items were identified") {
		t.Error("expected the empty-items placeholder")
	}
}

func TestRenderHTML_EscapesUserContent(t *testing.T) {
	data := sampleDigest()
	data.Summary = `<script>alert("x")</script>`

	html, err := RenderHTML(data, digestNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("summary was not escaped")
	}
}

func TestRenderText(t *testing.T) {
	text := RenderText(sampleDigest(), digestNow)

	if !strings.HasPrefix(text, "MEETING DIGEST: Sprint Planning\n"+strings.Repeat("=", 50)) {
		t.Errorf("unexpected digest header:\n%s", text)
	}
	for _, want := range []string{
		"MEETING SUMMARY:",
		"ACTION ITEMS (2 tasks):",
		"1. 🔴 Fix the login outage",
		"   Assignee: Alice",
		"   Deadline: by friday",
		"2. 🟢 Update the onboarding docs",
		"Meeting Mood: 😊 Positive",
		"Total Action Items: 2",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered text missing %q", want)
		}
	}
}

func TestRenderText_Defaults(t *testing.T) {
	text := RenderText(DigestData{}, digestNow)

	for _, want := range []string{
		"MEETING DIGEST: Team Meeting",
		"Generated: August 26, 2026 at 2:30 PM",
		"No specific action items identified.",
		"Meeting Mood: 😐 Neutral",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered text missing %q", want)
		}
	}
}

func TestBuildView_PriorityCounts(t *testing.T) {
	data := sampleDigest()
	data.ActionItems = append(data.ActionItems, entities.ActionItem{
		Task: "Review budget", Priority: entities.PriorityMedium,
	})

	view := buildView(data, digestNow)
	if view.HighCount != 1 || view.MediumCount != 1 || view.LowCount != 1 {
		t.Errorf("unexpected counts high=%d medium=%d low=%d",
			view.HighCount, view.MediumCount, view.LowCount)
	}
	if view.TotalItems != 3 {
		t.Errorf("expected 3 total items, got %d", view.TotalItems)
	}
	if view.Items[0].Index != 1 || view.Items[2].Index != 3 {
		t.Error("item indexes should be 1-based")
	}
}
