// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sgslabs/sgsdiag/ent/predicate"
	"github.com/sgslabs/sgsdiag/ent/reportevent"
)

// ReportEventUpdate is the builder for updating ReportEvent entities.
type ReportEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReportEventMutation
}

// Where appends a list predicates to the ReportEventUpdate builder.
func (_u *ReportEventUpdate) Where(ps ...predicate.ReportEvent) *ReportEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReportEventUpdate) SetSessionID(v string) *ReportEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableSessionID(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGenerator sets the "generator" field.
func (_u *ReportEventUpdate) SetGenerator(v string) *ReportEventUpdate {
	_u.mutation.SetGenerator(v)
	return _u
}

// SetNillableGenerator sets the "generator" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableGenerator(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetGenerator(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ReportEventUpdate) SetSuccess(v bool) *ReportEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableSuccess(v *bool) *ReportEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetPai sets the "pai" field.
func (_u *ReportEventUpdate) SetPai(v int) *ReportEventUpdate {
	_u.mutation.ResetPai()
	_u.mutation.SetPai(v)
	return _u
}

// SetNillablePai sets the "pai" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillablePai(v *int) *ReportEventUpdate {
	if v != nil {
		_u.SetPai(*v)
	}
	return _u
}

// AddPai adds value to the "pai" field.
func (_u *ReportEventUpdate) AddPai(v int) *ReportEventUpdate {
	_u.mutation.AddPai(v)
	return _u
}

// SetReportText sets the "report_text" field.
func (_u *ReportEventUpdate) SetReportText(v string) *ReportEventUpdate {
	_u.mutation.SetReportText(v)
	return _u
}

// SetNillableReportText sets the "report_text" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableReportText(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetReportText(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportEventUpdate) SetErrorMessage(v string) *ReportEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportEventUpdate) SetNillableErrorMessage(v *string) *ReportEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ReportEventMutation object of the builder.
func (_u *ReportEventUpdate) Mutation() *ReportEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reportevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Generator(); ok {
		if err := reportevent.GeneratorValidator(v); err != nil {
			return &ValidationError{Name: "generator", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.generator": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportevent.Table, reportevent.Columns, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reportevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generator(); ok {
		_spec.SetField(reportevent.FieldGenerator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(reportevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Pai(); ok {
		_spec.SetField(reportevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPai(); ok {
		_spec.AddField(reportevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportText(); ok {
		_spec.SetField(reportevent.FieldReportText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportEventUpdateOne is the builder for updating a single ReportEvent entity.
type ReportEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReportEventUpdateOne) SetSessionID(v string) *ReportEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableSessionID(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGenerator sets the "generator" field.
func (_u *ReportEventUpdateOne) SetGenerator(v string) *ReportEventUpdateOne {
	_u.mutation.SetGenerator(v)
	return _u
}

// SetNillableGenerator sets the "generator" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableGenerator(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetGenerator(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ReportEventUpdateOne) SetSuccess(v bool) *ReportEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableSuccess(v *bool) *ReportEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetPai sets the "pai" field.
func (_u *ReportEventUpdateOne) SetPai(v int) *ReportEventUpdateOne {
	_u.mutation.ResetPai()
	_u.mutation.SetPai(v)
	return _u
}

// SetNillablePai sets the "pai" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillablePai(v *int) *ReportEventUpdateOne {
	if v != nil {
		_u.SetPai(*v)
	}
	return _u
}

// AddPai adds value to the "pai" field.
func (_u *ReportEventUpdateOne) AddPai(v int) *ReportEventUpdateOne {
	_u.mutation.AddPai(v)
	return _u
}

// SetReportText sets the "report_text" field.
func (_u *ReportEventUpdateOne) SetReportText(v string) *ReportEventUpdateOne {
	_u.mutation.SetReportText(v)
	return _u
}

// SetNillableReportText sets the "report_text" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableReportText(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetReportText(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportEventUpdateOne) SetErrorMessage(v string) *ReportEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportEventUpdateOne) SetNillableErrorMessage(v *string) *ReportEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ReportEventMutation object of the builder.
func (_u *ReportEventUpdateOne) Mutation() *ReportEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportEventUpdate builder.
func (_u *ReportEventUpdateOne) Where(ps ...predicate.ReportEvent) *ReportEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportEventUpdateOne) Select(field string, fields ...string) *ReportEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportEvent entity.
func (_u *ReportEventUpdateOne) Save(ctx context.Context) (*ReportEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEventUpdateOne) SaveX(ctx context.Context) *ReportEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reportevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Generator(); ok {
		if err := reportevent.GeneratorValidator(v); err != nil {
			return &ValidationError{Name: "generator", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.generator": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportEventUpdateOne) sqlSave(ctx context.Context) (_node *ReportEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportevent.Table, reportevent.Columns, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportevent.FieldID)
		for _, f := range fields {
			if !reportevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportevent.FieldID {
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
		_spec.SetField(reportevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generator(); ok {
		_spec.SetField(reportevent.FieldGenerator, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(reportevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Pai(); ok {
		_spec.SetField(reportevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPai(); ok {
		_spec.AddField(reportevent.FieldPai, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportText(); ok {
		_spec.SetField(reportevent.FieldReportText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &ReportEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
