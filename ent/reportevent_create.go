// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sgslabs/sgsdiag/ent/reportevent"
)

// ReportEventCreate is the builder for creating a ReportEvent entity.
type ReportEventCreate struct {
	config
	mutation *ReportEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReportEventCreate) SetSequence(v int64) *ReportEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReportEventCreate) SetTimestamp(v time.Time) *ReportEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReportEventCreate) SetNillableTimestamp(v *time.Time) *ReportEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ReportEventCreate) SetSessionID(v string) *ReportEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetGenerator sets the "generator" field.
func (_c *ReportEventCreate) SetGenerator(v string) *ReportEventCreate {
	_c.mutation.SetGenerator(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ReportEventCreate) SetSuccess(v bool) *ReportEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetPai sets the "pai" field.
func (_c *ReportEventCreate) SetPai(v int) *ReportEventCreate {
	_c.mutation.SetPai(v)
	return _c
}

// SetNillablePai sets the "pai" field if the given value is not nil.
func (_c *ReportEventCreate) SetNillablePai(v *int) *ReportEventCreate {
	if v != nil {
		_c.SetPai(*v)
	}
	return _c
}

// SetReportText sets the "report_text" field.
func (_c *ReportEventCreate) SetReportText(v string) *ReportEventCreate {
	_c.mutation.SetReportText(v)
	return _c
}

// SetNillableReportText sets the "report_text" field if the given value is not nil.
func (_c *ReportEventCreate) SetNillableReportText(v *string) *ReportEventCreate {
	if v != nil {
		_c.SetReportText(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ReportEventCreate) SetErrorMessage(v string) *ReportEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ReportEventCreate) SetNillableErrorMessage(v *string) *ReportEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the ReportEventMutation object of the builder.
func (_c *ReportEventCreate) Mutation() *ReportEventMutation {
	return _c.mutation
}

// Save creates the ReportEvent in the database.
func (_c *ReportEventCreate) Save(ctx context.Context) (*ReportEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportEventCreate) SaveX(ctx context.Context) *ReportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reportevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Pai(); !ok {
		v := reportevent.DefaultPai
		_c.mutation.SetPai(v)
	}
	if _, ok := _c.mutation.ReportText(); !ok {
		v := reportevent.DefaultReportText
		_c.mutation.SetReportText(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := reportevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReportEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReportEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReportEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := reportevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Generator(); !ok {
		return &ValidationError{Name: "generator", err: errors.New(`ent: missing required field "ReportEvent.generator"`)}
	}
	if v, ok := _c.mutation.Generator(); ok {
		if err := reportevent.GeneratorValidator(v); err != nil {
			return &ValidationError{Name: "generator", err: fmt.Errorf(`ent: validator failed for field "ReportEvent.generator": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ReportEvent.success"`)}
	}
	if _, ok := _c.mutation.Pai(); !ok {
		return &ValidationError{Name: "pai", err: errors.New(`ent: missing required field "ReportEvent.pai"`)}
	}
	if _, ok := _c.mutation.ReportText(); !ok {
		return &ValidationError{Name: "report_text", err: errors.New(`ent: missing required field "ReportEvent.report_text"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "ReportEvent.error_message"`)}
	}
	return nil
}

func (_c *ReportEventCreate) sqlSave(ctx context.Context) (*ReportEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportEventCreate) createSpec() (*ReportEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportevent.Table, sqlgraph.NewFieldSpec(reportevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reportevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reportevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(reportevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Generator(); ok {
		_spec.SetField(reportevent.FieldGenerator, field.TypeString, value)
		_node.Generator = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(reportevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Pai(); ok {
		_spec.SetField(reportevent.FieldPai, field.TypeInt, value)
		_node.Pai = value
	}
	if value, ok := _c.mutation.ReportText(); ok {
		_spec.SetField(reportevent.FieldReportText, field.TypeString, value)
		_node.ReportText = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(reportevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// ReportEventCreateBulk is the builder for creating many ReportEvent entities in bulk.
type ReportEventCreateBulk struct {
	config
	err      error
	builders []*ReportEventCreate
}

// Save creates the ReportEvent entities in the database.
func (_c *ReportEventCreateBulk) Save(ctx context.Context) ([]*ReportEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReportEventCreateBulk) SaveX(ctx context.Context) []*ReportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
