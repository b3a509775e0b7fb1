package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AssessmentEventData captures a session lifecycle event.
type AssessmentEventData struct {
	SessionID      string
	Action         string // started, submitted, completed, report_failed, reset
	ApplicantName  string
	ApplicantGrade string
	ApplicantCode  string
	PAI            int
	CategoryScores map[string]float64
	AnswerCount    int
}

// AnswerEventData captures a single recorded Likert answer.
type AnswerEventData struct {
	SessionID      string
	QuestionID     string
	Category       string
	RawScore       int
	EffectiveScore int
	Reverse        bool
}

// ReportEventData captures a report generation attempt.
type ReportEventData struct {
	SessionID    string
	Generator    string // llm or remote
	Success      bool
	PAI          int
	ReportText   string
	ErrorMessage string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AssessmentRecord is a completed diagnostic as read back for history views.
type AssessmentRecord struct {
	SessionID      string
	Timestamp      time.Time
	ApplicantName  string
	ApplicantGrade string
	ApplicantCode  string
	PAI            int
	CategoryScores map[string]float64
}

// ReportRecord is a stored report generation outcome.
type ReportRecord struct {
	SessionID  string
	Timestamp  time.Time
	Generator  string
	Success    bool
	PAI        int
	ReportText string
}

// LLMEvent is a logged LLM request as read back for inspection.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAssessment records a session lifecycle event.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendAnswer records a single answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendReport records a report generation attempt.
	AppendReport(ctx context.Context, data ReportEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// CompletedAssessments returns completed diagnostics, newest first.
	CompletedAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error)

	// AnswersForSession returns a session's answers in event order.
	AnswersForSession(ctx context.Context, sessionID string) ([]AnswerEventData, error)

	// ReportForSession returns the latest successful report for a session,
	// or nil if none was generated.
	ReportForSession(ctx context.Context, sessionID string) (*ReportRecord, error)

	// QueryLLMEvents returns logged LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one logged request by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
