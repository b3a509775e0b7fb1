// Code generated by ent, DO NOT EDIT.

package reportevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sgslabs/sgsdiag/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSessionID, v))
}

// Generator applies equality check predicate on the "generator" field. It's identical to GeneratorEQ.
func Generator(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldGenerator, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSuccess, v))
}

// Pai applies equality check predicate on the "pai" field. It's identical to PaiEQ.
func Pai(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldPai, v))
}

// ReportText applies equality check predicate on the "report_text" field. It's identical to ReportTextEQ.
func ReportText(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldReportText, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// GeneratorEQ applies the EQ predicate on the "generator" field.
func GeneratorEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldGenerator, v))
}

// GeneratorNEQ applies the NEQ predicate on the "generator" field.
func GeneratorNEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldGenerator, v))
}

// GeneratorIn applies the In predicate on the "generator" field.
func GeneratorIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldGenerator, vs...))
}

// GeneratorNotIn applies the NotIn predicate on the "generator" field.
func GeneratorNotIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldGenerator, vs...))
}

// GeneratorGT applies the GT predicate on the "generator" field.
func GeneratorGT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldGenerator, v))
}

// GeneratorGTE applies the GTE predicate on the "generator" field.
func GeneratorGTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldGenerator, v))
}

// GeneratorLT applies the LT predicate on the "generator" field.
func GeneratorLT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldGenerator, v))
}

// GeneratorLTE applies the LTE predicate on the "generator" field.
func GeneratorLTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldGenerator, v))
}

// GeneratorContains applies the Contains predicate on the "generator" field.
func GeneratorContains(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContains(FieldGenerator, v))
}

// GeneratorHasPrefix applies the HasPrefix predicate on the "generator" field.
func GeneratorHasPrefix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasPrefix(FieldGenerator, v))
}

// GeneratorHasSuffix applies the HasSuffix predicate on the "generator" field.
func GeneratorHasSuffix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasSuffix(FieldGenerator, v))
}

// GeneratorEqualFold applies the EqualFold predicate on the "generator" field.
func GeneratorEqualFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEqualFold(FieldGenerator, v))
}

// GeneratorContainsFold applies the ContainsFold predicate on the "generator" field.
func GeneratorContainsFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContainsFold(FieldGenerator, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldSuccess, v))
}

// PaiEQ applies the EQ predicate on the "pai" field.
func PaiEQ(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldPai, v))
}

// PaiNEQ applies the NEQ predicate on the "pai" field.
func PaiNEQ(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldPai, v))
}

// PaiIn applies the In predicate on the "pai" field.
func PaiIn(vs ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldPai, vs...))
}

// PaiNotIn applies the NotIn predicate on the "pai" field.
func PaiNotIn(vs ...int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldPai, vs...))
}

// PaiGT applies the GT predicate on the "pai" field.
func PaiGT(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldPai, v))
}

// PaiGTE applies the GTE predicate on the "pai" field.
func PaiGTE(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldPai, v))
}

// PaiLT applies the LT predicate on the "pai" field.
func PaiLT(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldPai, v))
}

// PaiLTE applies the LTE predicate on the "pai" field.
func PaiLTE(v int) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldPai, v))
}

// ReportTextEQ applies the EQ predicate on the "report_text" field.
func ReportTextEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldReportText, v))
}

// ReportTextNEQ applies the NEQ predicate on the "report_text" field.
func ReportTextNEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldReportText, v))
}

// ReportTextIn applies the In predicate on the "report_text" field.
func ReportTextIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldReportText, vs...))
}

// ReportTextNotIn applies the NotIn predicate on the "report_text" field.
func ReportTextNotIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldReportText, vs...))
}

// ReportTextGT applies the GT predicate on the "report_text" field.
func ReportTextGT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldReportText, v))
}

// ReportTextGTE applies the GTE predicate on the "report_text" field.
func ReportTextGTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldReportText, v))
}

// ReportTextLT applies the LT predicate on the "report_text" field.
func ReportTextLT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldReportText, v))
}

// ReportTextLTE applies the LTE predicate on the "report_text" field.
func ReportTextLTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldReportText, v))
}

// ReportTextContains applies the Contains predicate on the "report_text" field.
func ReportTextContains(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContains(FieldReportText, v))
}

// ReportTextHasPrefix applies the HasPrefix predicate on the "report_text" field.
func ReportTextHasPrefix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasPrefix(FieldReportText, v))
}

// ReportTextHasSuffix applies the HasSuffix predicate on the "report_text" field.
func ReportTextHasSuffix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasSuffix(FieldReportText, v))
}

// ReportTextEqualFold applies the EqualFold predicate on the "report_text" field.
func ReportTextEqualFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEqualFold(FieldReportText, v))
}

// ReportTextContainsFold applies the ContainsFold predicate on the "report_text" field.
func ReportTextContainsFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContainsFold(FieldReportText, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ReportEvent {
	return predicate.ReportEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportEvent) predicate.ReportEvent {
	return predicate.ReportEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportEvent) predicate.ReportEvent {
	return predicate.ReportEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportEvent) predicate.ReportEvent {
	return predicate.ReportEvent(sql.NotPredicates(p))
}
