// Code generated by ent, DO NOT EDIT.

package reportevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reportevent type in the database.
	Label = "report_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldGenerator holds the string denoting the generator field in the database.
	FieldGenerator = "generator"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldPai holds the string denoting the pai field in the database.
	FieldPai = "pai"
	// FieldReportText holds the string denoting the report_text field in the database.
	FieldReportText = "report_text"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the reportevent in the database.
	Table = "report_events"
)

// Columns holds all SQL columns for reportevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldGenerator,
	FieldSuccess,
	FieldPai,
	FieldReportText,
	FieldErrorMessage,
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
	// GeneratorValidator is a validator for the "generator" field. It is called by the builders before save.
	GeneratorValidator func(string) error
	// DefaultPai holds the default value on creation for the "pai" field.
	DefaultPai int
	// DefaultReportText holds the default value on creation for the "report_text" field.
	DefaultReportText string
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
)

// OrderOption defines the ordering options for the ReportEvent queries.
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

// ByGenerator orders the results by the generator field.
func ByGenerator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerator, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByPai orders the results by the pai field.
func ByPai(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPai, opts...).ToFunc()
}

// ByReportText orders the results by the report_text field.
func ByReportText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportText, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
