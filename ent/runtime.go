// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sgslabs/sgsdiag/ent/answerevent"
	"github.com/sgslabs/sgsdiag/ent/assessmentevent"
	"github.com/sgslabs/sgsdiag/ent/llmrequestevent"
	"github.com/sgslabs/sgsdiag/ent/reportevent"
	"github.com/sgslabs/sgsdiag/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[2].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescReverse is the schema descriptor for reverse field.
	answereventDescReverse := answereventFields[5].Descriptor()
	// answerevent.DefaultReverse holds the default value on creation for the reverse field.
	answerevent.DefaultReverse = answereventDescReverse.Default.(bool)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescAction is the schema descriptor for action field.
	assessmenteventDescAction := assessmenteventFields[1].Descriptor()
	// assessmentevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	assessmentevent.ActionValidator = assessmenteventDescAction.Validators[0].(func(string) error)
	// assessmenteventDescApplicantName is the schema descriptor for applicant_name field.
	assessmenteventDescApplicantName := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultApplicantName holds the default value on creation for the applicant_name field.
	assessmentevent.DefaultApplicantName = assessmenteventDescApplicantName.Default.(string)
	// assessmenteventDescApplicantGrade is the schema descriptor for applicant_grade field.
	assessmenteventDescApplicantGrade := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultApplicantGrade holds the default value on creation for the applicant_grade field.
	assessmentevent.DefaultApplicantGrade = assessmenteventDescApplicantGrade.Default.(string)
	// assessmenteventDescApplicantCode is the schema descriptor for applicant_code field.
	assessmenteventDescApplicantCode := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultApplicantCode holds the default value on creation for the applicant_code field.
	assessmentevent.DefaultApplicantCode = assessmenteventDescApplicantCode.Default.(string)
	// assessmenteventDescPai is the schema descriptor for pai field.
	assessmenteventDescPai := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultPai holds the default value on creation for the pai field.
	assessmentevent.DefaultPai = assessmenteventDescPai.Default.(int)
	// assessmenteventDescAnswerCount is the schema descriptor for answer_count field.
	assessmenteventDescAnswerCount := assessmenteventFields[7].Descriptor()
	// assessmentevent.DefaultAnswerCount holds the default value on creation for the answer_count field.
	assessmentevent.DefaultAnswerCount = assessmenteventDescAnswerCount.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	reporteventMixin := schema.ReportEvent{}.Mixin()
	reporteventMixinFields0 := reporteventMixin[0].Fields()
	_ = reporteventMixinFields0
	reporteventFields := schema.ReportEvent{}.Fields()
	_ = reporteventFields
	// reporteventDescTimestamp is the schema descriptor for timestamp field.
	reporteventDescTimestamp := reporteventMixinFields0[1].Descriptor()
	// reportevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reportevent.DefaultTimestamp = reporteventDescTimestamp.Default.(func() time.Time)
	// reporteventDescSessionID is the schema descriptor for session_id field.
	reporteventDescSessionID := reporteventFields[0].Descriptor()
	// reportevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reportevent.SessionIDValidator = reporteventDescSessionID.Validators[0].(func(string) error)
	// reporteventDescGenerator is the schema descriptor for generator field.
	reporteventDescGenerator := reporteventFields[1].Descriptor()
	// reportevent.GeneratorValidator is a validator for the "generator" field. It is called by the builders before save.
	reportevent.GeneratorValidator = reporteventDescGenerator.Validators[0].(func(string) error)
	// reporteventDescPai is the schema descriptor for pai field.
	reporteventDescPai := reporteventFields[3].Descriptor()
	// reportevent.DefaultPai holds the default value on creation for the pai field.
	reportevent.DefaultPai = reporteventDescPai.Default.(int)
	// reporteventDescReportText is the schema descriptor for report_text field.
	reporteventDescReportText := reporteventFields[4].Descriptor()
	// reportevent.DefaultReportText holds the default value on creation for the report_text field.
	reportevent.DefaultReportText = reporteventDescReportText.Default.(string)
	// reporteventDescErrorMessage is the schema descriptor for error_message field.
	reporteventDescErrorMessage := reporteventFields[5].Descriptor()
	// reportevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	reportevent.DefaultErrorMessage = reporteventDescErrorMessage.Default.(string)
}
