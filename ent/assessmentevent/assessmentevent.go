// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldApplicantName holds the string denoting the applicant_name field in the database.
	FieldApplicantName = "applicant_name"
	// FieldApplicantGrade holds the string denoting the applicant_grade field in the database.
	FieldApplicantGrade = "applicant_grade"
	// FieldApplicantCode holds the string denoting the applicant_code field in the database.
	FieldApplicantCode = "applicant_code"
	// FieldPai holds the string denoting the pai field in the database.
	FieldPai = "pai"
	// FieldCategoryScores holds the string denoting the category_scores field in the database.
	FieldCategoryScores = "category_scores"
	// FieldAnswerCount holds the string denoting the answer_count field in the database.
	FieldAnswerCount = "answer_count"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldApplicantName,
	FieldApplicantGrade,
	FieldApplicantCode,
	FieldPai,
	FieldCategoryScores,
	FieldAnswerCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultApplicantName holds the default value on creation for the "applicant_name" field.
	DefaultApplicantName string
	// DefaultApplicantGrade holds the default value on creation for the "applicant_grade" field.
	DefaultApplicantGrade string
	// DefaultApplicantCode holds the default value on creation for the "applicant_code" field.
	DefaultApplicantCode string
	// DefaultPai holds the default value on creation for the "pai" field.
	DefaultPai int
	// DefaultAnswerCount holds the default value on creation for the "answer_count" field.
	DefaultAnswerCount int
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByApplicantName orders the results by the applicant_name field.
func ByApplicantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicantName, opts...).ToFunc()
}

// ByApplicantGrade orders the results by the applicant_grade field.
func ByApplicantGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicantGrade, opts...).ToFunc()
}

// ByApplicantCode orders the results by the applicant_code field.
func ByApplicantCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicantCode, opts...).ToFunc()
}

// ByPai orders the results by the pai field.
func ByPai(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPai, opts...).ToFunc()
}

// ByAnswerCount orders the results by the answer_count field.
func ByAnswerCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerCount, opts...).ToFunc()
}
