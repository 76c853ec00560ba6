package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/errors"
	"github.com/meetinglab/meeting-insights/internal/adapter/dto/meeting"
	"github.com/meetinglab/meeting-insights/internal/usecase/analytics"
	"github.com/meetinglab/meeting-insights/internal/usecase/summary"
	"github.com/meetinglab/meeting-insights/internal/usecase/transcription"
)

// Meeting handles transcription and analysis endpoints.
type Meeting struct {
	transcriber   *transcription.Service
	summarizer    *summary.Service
	extractor     *analytics.Extractor
	sentiment     *analytics.SentimentAnalyzer
	participation *analytics.ParticipationAnalyzer
	logger        *zap.Logger
}

// NewMeeting creates the meeting handler.
func NewMeeting(
	transcriber *transcription.Service,
	summarizer *summary.Service,
	extractor *analytics.Extractor,
	sentiment *analytics.SentimentAnalyzer,
	participation *analytics.ParticipationAnalyzer,
	logger *zap.Logger,
) *Meeting {
	return &Meeting{
		transcriber:   transcriber,
		summarizer:    summarizer,
		extractor:     extractor,
		sentiment:     sentiment,
		participation: participation,
		logger:        logger,
	}
}

// Transcribe transcribes a hosted audio file.
// POST /v1/meetings/transcribe
func (h *Meeting) Transcribe(c echo.Context) error {
	var req meeting.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	result, err := h.transcriber.Transcribe(c.Request().Context(), req.AudioURL)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrTranscriptionFailed(err))
	}

	return HandleSuccess(h.logger, c, meeting.TranscribeResponse{
		Transcript:   result.Transcript,
		Segments:     result.Segments,
		Language:     result.Language,
		Duration:     result.Duration,
		SpeakerCount: result.SpeakerCount,
	})
}

// Summarize generates a summary for a transcript.
// POST /v1/meetings/summarize
func (h *Meeting) Summarize(c echo.Context) error {
	var req meeting.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	text := h.summarizer.Generate(c.Request().Context(), req.Transcript)
	return HandleSuccess(h.logger, c, meeting.SummarizeResponse{Summary: text})
}

// Actions extracts action items from a transcript.
// POST /v1/meetings/actions
func (h *Meeting) Actions(c echo.Context) error {
	var req meeting.ActionsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	items := h.extractor.Extract(c.Request().Context(), req.Transcript)
	return HandleSuccess(h.logger, c, meeting.ActionsResponse{
		ActionItems: items,
		Total:       len(items),
	})
}

// Sentiment analyzes the emotional tone of a transcript.
// POST /v1/meetings/sentiment
func (h *Meeting) Sentiment(c echo.Context) error {
	var req meeting.SentimentRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	report := h.sentiment.Analyze(c.Request().Context(), req.Transcript, toSegments(req.Segments))
	return HandleSuccess(h.logger, c, report)
}

// Participation analyzes speaker participation over segments.
// POST /v1/meetings/participation
func (h *Meeting) Participation(c echo.Context) error {
	var req meeting.ParticipationRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	report := h.participation.Analyze(c.Request().Context(), toSegments(req.Segments))
	return HandleSuccess(h.logger, c, report)
}

// Process runs the full pipeline against a hosted audio file.
// POST /v1/meetings/process
func (h *Meeting) Process(c echo.Context) error {
	var req meeting.ProcessRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	ctx := c.Request().Context()

	result, err := h.transcriber.Transcribe(ctx, req.AudioURL)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrTranscriptionFailed(err))
	}

	summaryText := h.summarizer.Generate(ctx, result.Transcript)
	items := h.extractor.Extract(ctx, result.Transcript)
	sentimentReport := h.sentiment.Analyze(ctx, result.Transcript, result.Segments)
	participationReport := h.participation.Analyze(ctx, result.Segments)

	return HandleSuccess(h.logger, c, meeting.ProcessResponse{
		Transcript:    result.Transcript,
		Segments:      result.Segments,
		Summary:       summaryText,
		ActionItems:   items,
		Sentiment:     &sentimentReport,
		Participation: &participationReport,
	})
}
