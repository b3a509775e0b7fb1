// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sgslabs/sgsdiag/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentEventCreate) SetSessionID(v string) *AssessmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AssessmentEventCreate) SetAction(v string) *AssessmentEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetApplicantName sets the "applicant_name" field.
func (_c *AssessmentEventCreate) SetApplicantName(v string) *AssessmentEventCreate {
	_c.mutation.SetApplicantName(v)
	return _c
}

// SetNillableApplicantName sets the "applicant_name" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableApplicantName(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetApplicantName(*v)
	}
	return _c
}

// SetApplicantGrade sets the "applicant_grade" field.
func (_c *AssessmentEventCreate) SetApplicantGrade(v string) *AssessmentEventCreate {
	_c.mutation.SetApplicantGrade(v)
	return _c
}

// SetNillableApplicantGrade sets the "applicant_grade" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableApplicantGrade(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetApplicantGrade(*v)
	}
	return _c
}

// SetApplicantCode sets the "applicant_code" field.
func (_c *AssessmentEventCreate) SetApplicantCode(v string) *AssessmentEventCreate {
	_c.mutation.SetApplicantCode(v)
	return _c
}

// SetNillableApplicantCode sets the "applicant_code" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableApplicantCode(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetApplicantCode(*v)
	}
	return _c
}

// SetPai sets the "pai" field.
func (_c *AssessmentEventCreate) SetPai(v int) *AssessmentEventCreate {
	_c.mutation.SetPai(v)
	return _c
}

// SetNillablePai sets the "pai" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillablePai(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetPai(*v)
	}
	return _c
}

// SetCategoryScores sets the "category_scores" field.
func (_c *AssessmentEventCreate) SetCategoryScores(v map[string]float64) *AssessmentEventCreate {
	_c.mutation.SetCategoryScores(v)
	return _c
}

// SetAnswerCount sets the "answer_count" field.
func (_c *AssessmentEventCreate) SetAnswerCount(v int) *AssessmentEventCreate {
	_c.mutation.SetAnswerCount(v)
	return _c
}

// SetNillableAnswerCount sets the "answer_count" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableAnswerCount(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetAnswerCount(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ApplicantName(); !ok {
		v := assessmentevent.DefaultApplicantName
		_c.mutation.SetApplicantName(v)
	}
	if _, ok := _c.mutation.ApplicantGrade(); !ok {
		v := assessmentevent.DefaultApplicantGrade
		_c.mutation.SetApplicantGrade(v)
	}
	if _, ok := _c.mutation.ApplicantCode(); !ok {
		v := assessmentevent.DefaultApplicantCode
		_c.mutation.SetApplicantCode(v)
	}
	if _, ok := _c.mutation.Pai(); !ok {
		v := assessmentevent.DefaultPai
		_c.mutation.SetPai(v)
	}
	if _, ok := _c.mutation.AnswerCount(); !ok {
		v := assessmentevent.DefaultAnswerCount
		_c.mutation.SetAnswerCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AssessmentEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApplicantName(); !ok {
		return &ValidationError{Name: "applicant_name", err: errors.New(`ent: missing required field "AssessmentEvent.applicant_name"`)}
	}
	if _, ok := _c.mutation.ApplicantGrade(); !ok {
		return &ValidationError{Name: "applicant_grade", err: errors.New(`ent: missing required field "AssessmentEvent.applicant_grade"`)}
	}
	if _, ok := _c.mutation.ApplicantCode(); !ok {
		return &ValidationError{Name: "applicant_code", err: errors.New(`ent: missing required field "AssessmentEvent.applicant_code"`)}
	}
	if _, ok := _c.mutation.Pai(); !ok {
		return &ValidationError{Name: "pai", err: errors.New(`ent: missing required field "AssessmentEvent.pai"`)}
	}
	if _, ok := _c.mutation.AnswerCount(); !ok {
		return &ValidationError{Name: "answer_count", err: errors.New(`ent: missing required field "AssessmentEvent.answer_count"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ApplicantName(); ok {
		_spec.SetField(assessmentevent.FieldApplicantName, field.TypeString, value)
		_node.ApplicantName = value
	}
	if value, ok := _c.mutation.ApplicantGrade(); ok {
		_spec.SetField(assessmentevent.FieldApplicantGrade, field.TypeString, value)
		_node.ApplicantGrade = value
	}
	if value, ok := _c.mutation.ApplicantCode(); ok {
		_spec.SetField(assessmentevent.FieldApplicantCode, field.TypeString, value)
		_node.ApplicantCode = value
	}
	if value, ok := _c.mutation.Pai(); ok {
		_spec.SetField(assessmentevent.FieldPai, field.TypeInt, value)
		_node.Pai = value
	}
	if value, ok := _c.mutation.CategoryScores(); ok {
		_spec.SetField(assessmentevent.FieldCategoryScores, field.TypeJSON, value)
		_node.CategoryScores = value
	}
	if value, ok := _c.mutation.AnswerCount(); ok {
		_spec.SetField(assessmentevent.FieldAnswerCount, field.TypeInt, value)
		_node.AnswerCount = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
