// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sgslabs/sgsdiag/ent/assessmentevent"
	"github.com/sgslabs/sgsdiag/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdate) SetAction(v string) *AssessmentEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAction(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetApplicantName sets the "applicant_name" field.
func (_u *AssessmentEventUpdate) SetApplicantName(v string) *AssessmentEventUpdate {
	_u.mutation.SetApplicantName(v)
	return _u
}

// SetNillableApplicantName sets the "applicant_name" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableApplicantName(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetApplicantName(*v)
	}
	return _u
}

// SetApplicantGrade sets the "applicant_grade" field.
func (_u *AssessmentEventUpdate) SetApplicantGrade(v string) *AssessmentEventUpdate {
	_u.mutation.SetApplicantGrade(v)
	return _u
}

// SetNillableApplicantGrade sets the "applicant_grade" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableApplicantGrade(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetApplicantGrade(*v)
	}
	return _u
}

// SetApplicantCode sets the "applicant_code" field.
func (_u *AssessmentEventUpdate) SetApplicantCode(v string) *AssessmentEventUpdate {
	_u.mutation.SetApplicantCode(v)
	return _u
}

// SetNillableApplicantCode sets the "applicant_code" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableApplicantCode(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetApplicantCode(*v)
	}
	return _u
}

// SetPai sets the "pai" field.
func (_u *AssessmentEventUpdate) SetPai(v int) *AssessmentEventUpdate {
	_u.mutation.ResetPai()
	_u.mutation.SetPai(v)
	return _u
}

// SetNillablePai sets the "pai" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePai(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPai(*v)
	}
	return _u
}

// AddPai adds value to the "pai" field.
func (_u *AssessmentEventUpdate) AddPai(v int) *AssessmentEventUpdate {
	_u.mutation.AddPai(v)
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *AssessmentEventUpdate) SetCategoryScores(v map[string]float64) *AssessmentEventUpdate {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (_u *AssessmentEventUpdate) ClearCategoryScores() *AssessmentEventUpdate {
	_u.mutation.ClearCategoryScores()
	return _u
}

// SetAnswerCount sets the "answer_count" field.
func (_u *AssessmentEventUpdate) SetAnswerCount(v int) *AssessmentEventUpdate {
	_u.mutation.ResetAnswerCount()
	_u.mutation.SetAnswerCount(v)
	return _u
}

// SetNillableAnswerCount sets the "answer_count" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAnswerCount(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAnswerCount(*v)
	}
	return _u
}

// AddAnswerCount adds value to the "answer_count" field.
func (_u *AssessmentEventUpdate) AddAnswerCount(v int) *AssessmentEventUpdate {
	_u.mutation.AddAnswerCount(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicantName(); ok {
		_spec.SetField(assessmentevent.FieldApplicantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicantGrade(); ok {
		_spec.SetField(assessmentevent.FieldApplicantGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicantCode(); ok {
		_spec.SetField(assessmentevent.FieldApplicantCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pai(); ok {
		_spec.SetField(assessmentevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPai(); ok {
		_spec.AddField(assessmentevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(assessmentevent.FieldCategoryScores, field.TypeJSON, value)
	}
	if _u.mutation.CategoryScoresCleared() {
		_spec.ClearField(assessmentevent.FieldCategoryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnswerCount(); ok {
		_spec.SetField(assessmentevent.FieldAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerCount(); ok {
		_spec.AddField(assessmentevent.FieldAnswerCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdateOne) SetAction(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAction(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetApplicantName sets the "applicant_name" field.
func (_u *AssessmentEventUpdateOne) SetApplicantName(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetApplicantName(v)
	return _u
}

// SetNillableApplicantName sets the "applicant_name" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableApplicantName(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetApplicantName(*v)
	}
	return _u
}

// SetApplicantGrade sets the "applicant_grade" field.
func (_u *AssessmentEventUpdateOne) SetApplicantGrade(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetApplicantGrade(v)
	return _u
}

// SetNillableApplicantGrade sets the "applicant_grade" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableApplicantGrade(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetApplicantGrade(*v)
	}
	return _u
}

// SetApplicantCode sets the "applicant_code" field.
func (_u *AssessmentEventUpdateOne) SetApplicantCode(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetApplicantCode(v)
	return _u
}

// SetNillableApplicantCode sets the "applicant_code" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableApplicantCode(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetApplicantCode(*v)
	}
	return _u
}

// SetPai sets the "pai" field.
func (_u *AssessmentEventUpdateOne) SetPai(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetPai()
	_u.mutation.SetPai(v)
	return _u
}

// SetNillablePai sets the "pai" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePai(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPai(*v)
	}
	return _u
}

// AddPai adds value to the "pai" field.
func (_u *AssessmentEventUpdateOne) AddPai(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddPai(v)
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *AssessmentEventUpdateOne) SetCategoryScores(v map[string]float64) *AssessmentEventUpdateOne {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (_u *AssessmentEventUpdateOne) ClearCategoryScores() *AssessmentEventUpdateOne {
	_u.mutation.ClearCategoryScores()
	return _u
}

// SetAnswerCount sets the "answer_count" field.
func (_u *AssessmentEventUpdateOne) SetAnswerCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetAnswerCount()
	_u.mutation.SetAnswerCount(v)
	return _u
}

// SetNillableAnswerCount sets the "answer_count" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAnswerCount(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAnswerCount(*v)
	}
	return _u
}

// AddAnswerCount adds value to the "answer_count" field.
func (_u *AssessmentEventUpdateOne) AddAnswerCount(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddAnswerCount(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicantName(); ok {
		_spec.SetField(assessmentevent.FieldApplicantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicantGrade(); ok {
		_spec.SetField(assessmentevent.FieldApplicantGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApplicantCode(); ok {
		_spec.SetField(assessmentevent.FieldApplicantCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pai(); ok {
		_spec.SetField(assessmentevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPai(); ok {
		_spec.AddField(assessmentevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(assessmentevent.FieldCategoryScores, field.TypeJSON, value)
	}
	if _u.mutation.CategoryScoresCleared() {
		_spec.ClearField(assessmentevent.FieldCategoryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnswerCount(); ok {
		_spec.SetField(assessmentevent.FieldAnswerCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswerCount(); ok {
		_spec.AddField(assessmentevent.FieldAnswerCount, field.TypeInt, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
