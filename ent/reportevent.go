// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sgslabs/sgsdiag/ent/reportevent"
)

// ReportEvent is the model entity for the ReportEvent schema.
type ReportEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to AssessmentEvent
	SessionID string `json:"session_id,omitempty"`
	// llm or remote
	Generator string `json:"generator,omitempty"`
	// Whether generation produced a report
	Success bool `json:"success,omitempty"`
	// Composite PAI the report was generated for
	Pai int `json:"pai,omitempty"`
	// Full narrative text (on success only)
	ReportText string `json:"report_text,omitempty"`
	// Failure detail (on failure only)
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case reportevent.FieldID, reportevent.FieldSequence, reportevent.FieldPai:
			values[i] = new(sql.NullInt64)
		case reportevent.FieldSessionID, reportevent.FieldGenerator, reportevent.FieldReportText, reportevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case reportevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportEvent fields.
func (_m *ReportEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reportevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reportevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reportevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case reportevent.FieldGenerator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generator", values[i])
			} else if value.Valid {
				_m.Generator = value.String
			}
		case reportevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case reportevent.FieldPai:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pai", values[i])
			} else if value.Valid {
				_m.Pai = int(value.Int64)
			}
		case reportevent.FieldReportText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_text", values[i])
			} else if value.Valid {
				_m.ReportText = value.String
			}
		case reportevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReportEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReportEvent.
// Note that you need to call ReportEvent.Unwrap() before calling this method if this ReportEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportEvent) Update() *ReportEventUpdateOne {
	return NewReportEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportEvent) Unwrap() *ReportEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReportEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReportEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("generator=")
	builder.WriteString(_m.Generator)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("pai=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pai))
	builder.WriteString(", ")
	builder.WriteString("report_text=")
	builder.WriteString(_m.ReportText)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// ReportEvents is a parsable slice of ReportEvent.
type ReportEvents []*ReportEvent
