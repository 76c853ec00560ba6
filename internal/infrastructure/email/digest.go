package email

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// DigestData carries everything a meeting digest renders.
type DigestData struct {
	MeetingTitle string
	MeetingDate  string
	Summary      string
	ActionItems  []entities.ActionItem
	MeetingMood  string
	OverallTone  string
}

type digestView struct {
	DigestData
	MoodEmoji   string
	MoodColor   string
	HighCount   int
	MediumCount int
	LowCount    int
	TotalItems  int
	Items       []itemView
}

type itemView struct {
	Index int
	entities.ActionItem
	Emoji    string
	Color    string
	CSSClass string
}

var htmlDigest = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Meeting Digest - {{.MeetingTitle}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, sans-serif; color: #333; background: #f8f9fa; padding: 20px; }
.container { max-width: 800px; margin: 0 auto; background: white; border-radius: 12px; padding: 30px; }
.header { text-align: center; border-bottom: 3px solid #007bff; padding-bottom: 20px; margin-bottom: 30px; }
.header h1 { color: #007bff; font-size: 28px; }
.subtitle { color: #6c757d; margin-top: 8px; }
.section { margin: 30px 0; }
.section h2 { color: #495057; border-left: 4px solid #007bff; padding-left: 15px; font-size: 22px; }
.summary { background: #e3f2fd; padding: 25px; border-radius: 10px; }
.action-item { border: 1px solid #dee2e6; border-radius: 10px; margin: 15px 0; padding: 20px; }
.priority-high { border-left: 4px solid #dc3545; }
.priority-medium { border-left: 4px solid #fd7e14; }
.priority-low { border-left: 4px solid #28a745; }
.priority-badge { display: inline-block; padding: 4px 12px; border-radius: 20px; font-size: 12px; font-weight: bold; color: white; }
.task-meta { font-size: 14px; color: #6c757d; margin-top: 10px; }
.no-items { text-align: center; padding: 40px; color: #6c757d; font-style: italic; }
.footer { text-align: center; margin-top: 40px; border-top: 1px solid #dee2e6; padding-top: 20px; color: #6c757d; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h1>📋 {{.MeetingTitle}}</h1>
<div class="subtitle">Meeting Digest • {{.MeetingDate}}</div>
</div>
<div class="section">
<h2>📝 Meeting Summary</h2>
<div class="summary">{{.Summary}}</div>
</div>
<div class="section">
{{if .Items}}<h2>✅ Action Items ({{.TotalItems}} tasks)</h2>
<div>🔴 {{.HighCount}} High &nbsp; 🟡 {{.MediumCount}} Medium &nbsp; 🟢 {{.LowCount}} Low</div>
{{range .Items}}<div class="action-item {{.CSSClass}}">
<span class="priority-badge" style="background: {{.Color}};">{{.Emoji}} {{.Priority}}</span>
<span style="color: #6c757d; font-size: 12px;">#{{.Index}}</span>
<div>{{.Task}}</div>
<div class="task-meta">👤 <strong>{{.Assignee}}</strong> &nbsp; ⏰ {{.Deadline}} &nbsp; 📊 {{.Status}}</div>
</div>
{{end}}{{else}}<h2>✅ Action Items</h2>
<div class="no-items">No specific action items were identified in this meeting.</div>
{{end}}</div>
<div class="section">
<h2>📊 Meeting Insights</h2>
<div>Meeting Mood: <span style="color: {{.MoodColor}};">{{.MoodEmoji}} {{.MeetingMood}}</span></div>
<div>Total Action Items: {{.TotalItems}}</div>
{{if .OverallTone}}<div><strong>Overall Tone:</strong> {{.OverallTone}}</div>{{end}}
</div>
<div class="footer">
🤖 Generated by Meeting Insights<br>
<small>This digest was automatically created from your meeting audio</small>
</div>
</div>
</body>
</html>
`))

// RenderHTML renders the HTML version of the meeting digest.
func RenderHTML(data DigestData, now time.Time) (string, error) {
	view := buildView(data, now)
	var sb strings.Builder
	if err := htmlDigest.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return sb.String(), nil
}

// RenderText renders the plain text fallback of the meeting digest.
func RenderText(data DigestData, now time.Time) string {
	view := buildView(data, now)

	var parts []string
	parts = append(parts,
		fmt.Sprintf("MEETING DIGEST: %s", view.MeetingTitle),
		strings.Repeat("=", 50),
		fmt.Sprintf("Generated: %s", view.MeetingDate),
		"",
		"MEETING SUMMARY:",
		strings.Repeat("-", 20),
		view.Summary,
		"",
	)

	if len(view.Items) > 0 {
		parts = append(parts,
			fmt.Sprintf("ACTION ITEMS (%d tasks):", view.TotalItems),
			strings.Repeat("-", 20),
		)
		for _, item := range view.Items {
			parts = append(parts,
				fmt.Sprintf("%d. %s %s", item.Index, item.Emoji, item.Task),
				fmt.Sprintf("   Assignee: %s", item.Assignee),
				fmt.Sprintf("   Deadline: %s", item.Deadline),
				fmt.Sprintf("   Priority: %s", item.Priority),
				"",
			)
		}
	} else {
		parts = append(parts,
			"ACTION ITEMS:",
			strings.Repeat("-", 20),
			"No specific action items identified.",
			"",
		)
	}

	parts = append(parts,
		"MEETING INSIGHTS:",
		strings.Repeat("-", 20),
		fmt.Sprintf("Meeting Mood: %s %s", view.MoodEmoji, view.MeetingMood),
		fmt.Sprintf("Total Action Items: %d", view.TotalItems),
		"",
		"Generated by Meeting Insights",
	)

	return strings.Join(parts, "\n")
}

func buildView(data DigestData, now time.Time) digestView {
	view := digestView{DigestData: data}

	if view.MeetingTitle == "" {
		view.MeetingTitle = "Team Meeting"
	}
	if view.MeetingDate == "" {
		view.MeetingDate = now.Format("January 2, 2006 at 3:04 PM")
	}
	if view.MeetingMood == "" {
		view.MeetingMood = entities.MoodNeutral
	}
	view.MoodEmoji, view.MoodColor = moodStyle(view.MeetingMood)
	view.TotalItems = len(data.ActionItems)

	for i, item := range data.ActionItems {
		emoji, color := priorityStyle(item.Priority)
		switch item.Priority {
		case entities.PriorityHigh:
			view.HighCount++
		case entities.PriorityMedium:
			view.MediumCount++
		default:
			view.LowCount++
		}
		view.Items = append(view.Items, itemView{
			Index:      i + 1,
			ActionItem: item,
			Emoji:      emoji,
			Color:      color,
			CSSClass:   "priority-" + strings.ToLower(item.Priority),
		})
	}
	return view
}

func priorityStyle(priority string) (emoji, color string) {
	switch priority {
	case entities.PriorityHigh:
		return "🔴", "#dc3545"
	case entities.PriorityMedium:
		return "🟡", "#fd7e14"
	default:
		return "🟢", "#28a745"
	}
}

func moodStyle(mood string) (emoji, color string) {
	switch mood {
	case entities.MoodPositive:
		return "😊", "#28a745"
	case entities.MoodNegative:
		return "😞", "#dc3545"
	default:
		return "😐", "#6c757d"
	}
}
