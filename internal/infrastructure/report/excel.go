package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
)

// ExcelExporter writes meeting reports as xlsx workbooks.
type ExcelExporter struct {
	outputDir string
	logger    *zap.Logger
	now       func() time.Time
}

// NewExcelExporter creates an exporter writing into outputDir.
func NewExcelExporter(outputDir string, logger *zap.Logger) *ExcelExporter {
	return &ExcelExporter{
		outputDir: outputDir,
		logger:    logger,
		now:       time.Now,
	}
}

// ReportData bundles the analysis outputs a workbook covers.
type ReportData struct {
	MeetingTitle  string
	Summary       string
	ActionItems   []entities.ActionItem
	Sentiment     *entities.SentimentReport
	Participation *entities.ParticipationReport
	SpeakerOrder  []string
}

// Export writes the workbook and returns its path.
func (e *ExcelExporter) Export(data ReportData) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeOverview(f, data); err != nil {
		return "", err
	}
	if err := e.writeActionItems(f, data.ActionItems); err != nil {
		return "", err
	}
	if err := e.writeParticipation(f, data.Participation, data.SpeakerOrder); err != nil {
		return "", err
	}

	name := fmt.Sprintf("meeting_report_%s_%s.xlsx", e.now().Format("20060102_150405"), uuid.NewString()[:8])
	path := filepath.Join(e.outputDir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	if e.logger != nil {
		e.logger.Info("report exported", zap.String("path", path))
	}
	return path, nil
}

func (e *ExcelExporter) writeOverview(f *excelize.File, data ReportData) error {
	sheet := "Overview"
	f.SetSheetName("Sheet1", sheet)

	title := data.MeetingTitle
	if title == "" {
		title = "Team Meeting"
	}

	rows := [][]interface{}{
		{"Meeting", title},
		{"Generated", e.now().Format("January 2, 2006 at 3:04 PM")},
		{"Summary", data.Summary},
		{"Action Items", len(data.ActionItems)},
	}
	if data.Sentiment != nil {
		rows = append(rows, []interface{}{"Meeting Mood", data.Sentiment.MeetingMood})
		if data.Sentiment.OverallSentiment != nil {
			rows = append(rows, []interface{}{"Overall Sentiment", data.Sentiment.OverallSentiment.Compound})
		}
		if data.Sentiment.Insights != nil {
			rows = append(rows, []interface{}{"Overall Tone", data.Sentiment.Insights.OverallTone})
		}
	}

	return writeRows(f, sheet, rows)
}

func (e *ExcelExporter) writeActionItems(f *excelize.File, items []entities.ActionItem) error {
	sheet := "Action Items"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"ID", "Task", "Assignee", "Deadline", "Priority", "Status"},
	}
	for _, item := range items {
		rows = append(rows, []interface{}{
			item.ID, item.Task, item.Assignee, item.Deadline, item.Priority, item.Status,
		})
	}
	return writeRows(f, sheet, rows)
}

func (e *ExcelExporter) writeParticipation(f *excelize.File, report *entities.ParticipationReport, order []string) error {
	sheet := "Participation"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Speaker", "Talk Time (s)", "Talk %", "Words", "Word %", "Segments", "Avg Sentiment", "Mood"},
	}
	if report != nil {
		for _, speaker := range speakerIterationOrder(report, order) {
			stats, ok := report.SpeakerStats[speaker]
			if !ok {
				continue
			}
			rows = append(rows, []interface{}{
				speaker, stats.TalkTime, stats.TalkPercentage, stats.WordCount,
				stats.WordPercentage, stats.Segments, stats.AvgSentiment, stats.Mood,
			})
		}
	}
	return writeRows(f, sheet, rows)
}

// speakerIterationOrder prefers the caller-supplied order and falls back
// to sorted map keys so the sheet layout stays deterministic.
func speakerIterationOrder(report *entities.ParticipationReport, order []string) []string {
	if len(order) > 0 {
		return order
	}
	speakers := make([]string, 0, len(report.SpeakerStats))
	for speaker := range report.SpeakerStats {
		speakers = append(speakers, speaker)
	}
	sort.Strings(speakers)
	return speakers
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
