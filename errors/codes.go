package errors

// ErrorCode identifies an application error category in API responses.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3

	ErrorCode_INVALID_PAYLOAD   ErrorCode = 100
	ErrorCode_VALIDATION_FAILED ErrorCode = 101

	ErrorCode_TRANSCRIPTION_FAILED     ErrorCode = 200
	ErrorCode_MISSING_AUDIO_URL        ErrorCode = 201
	ErrorCode_ANALYSIS_FAILED          ErrorCode = 210
	ErrorCode_SUMMARY_FAILED           ErrorCode = 211
	ErrorCode_NLP_SERVICE_UNAVAILABLE  ErrorCode = 212
	ErrorCode_EMPTY_TRANSCRIPT         ErrorCode = 213
	ErrorCode_EMPTY_SEGMENTS           ErrorCode = 214
	ErrorCode_INTEGRATION_EMAIL_FAILED ErrorCode = 300
	ErrorCode_CALENDAR_AUTH_REQUIRED   ErrorCode = 301
	ErrorCode_CALENDAR_SYNC_FAILED     ErrorCode = 302
	ErrorCode_REPORT_EXPORT_FAILED     ErrorCode = 303
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:        "VALIDATION_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:     "TRANSCRIPTION_FAILED",
	ErrorCode_MISSING_AUDIO_URL:        "MISSING_AUDIO_URL",
	ErrorCode_ANALYSIS_FAILED:          "ANALYSIS_FAILED",
	ErrorCode_SUMMARY_FAILED:           "SUMMARY_FAILED",
	ErrorCode_NLP_SERVICE_UNAVAILABLE:  "NLP_SERVICE_UNAVAILABLE",
	ErrorCode_EMPTY_TRANSCRIPT:         "EMPTY_TRANSCRIPT",
	ErrorCode_EMPTY_SEGMENTS:           "EMPTY_SEGMENTS",
	ErrorCode_INTEGRATION_EMAIL_FAILED: "INTEGRATION_EMAIL_FAILED",
	ErrorCode_CALENDAR_AUTH_REQUIRED:   "CALENDAR_AUTH_REQUIRED",
	ErrorCode_CALENDAR_SYNC_FAILED:     "CALENDAR_SYNC_FAILED",
	ErrorCode_REPORT_EXPORT_FAILED:     "REPORT_EXPORT_FAILED",
}

// String returns the symbolic name for the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
