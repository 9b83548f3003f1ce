// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prajwalk/mathsprint/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptEventCreate) SetAttemptID(v int64) *AttemptEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *AttemptEventCreate) SetOperation(v string) *AttemptEventCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetDigits sets the "digits" field.
func (_c *AttemptEventCreate) SetDigits(v int) *AttemptEventCreate {
	_c.mutation.SetDigits(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *AttemptEventCreate) SetQuestion(v string) *AttemptEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetNum1 sets the "num1" field.
func (_c *AttemptEventCreate) SetNum1(v int) *AttemptEventCreate {
	_c.mutation.SetNum1(v)
	return _c
}

// SetNillableNum1 sets the "num1" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableNum1(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetNum1(*v)
	}
	return _c
}

// SetNum2 sets the "num2" field.
func (_c *AttemptEventCreate) SetNum2(v int) *AttemptEventCreate {
	_c.mutation.SetNum2(v)
	return _c
}

// SetNillableNum2 sets the "num2" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableNum2(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetNum2(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *AttemptEventCreate) SetUserAnswer(v float64) *AttemptEventCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *AttemptEventCreate) SetCorrectAnswer(v float64) *AttemptEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeTaken sets the "time_taken" field.
func (_c *AttemptEventCreate) SetTimeTaken(v float64) *AttemptEventCreate {
	_c.mutation.SetTimeTaken(v)
	return _c
}

// SetWeaknessTarget sets the "weakness_target" field.
func (_c *AttemptEventCreate) SetWeaknessTarget(v bool) *AttemptEventCreate {
	_c.mutation.SetWeaknessTarget(v)
	return _c
}

// SetNillableWeaknessTarget sets the "weakness_target" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableWeaknessTarget(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetWeaknessTarget(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Num1(); !ok {
		v := attemptevent.DefaultNum1
		_c.mutation.SetNum1(v)
	}
	if _, ok := _c.mutation.Num2(); !ok {
		v := attemptevent.DefaultNum2
		_c.mutation.SetNum2(v)
	}
	if _, ok := _c.mutation.WeaknessTarget(); !ok {
		v := attemptevent.DefaultWeaknessTarget
		_c.mutation.SetWeaknessTarget(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptEvent.attempt_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "AttemptEvent.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := attemptevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Digits(); !ok {
		return &ValidationError{Name: "digits", err: errors.New(`ent: missing required field "AttemptEvent.digits"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "AttemptEvent.question"`)}
	}
	if _, ok := _c.mutation.Num1(); !ok {
		return &ValidationError{Name: "num1", err: errors.New(`ent: missing required field "AttemptEvent.num1"`)}
	}
	if _, ok := _c.mutation.Num2(); !ok {
		return &ValidationError{Name: "num2", err: errors.New(`ent: missing required field "AttemptEvent.num2"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "AttemptEvent.user_answer"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "AttemptEvent.correct_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeTaken(); !ok {
		return &ValidationError{Name: "time_taken", err: errors.New(`ent: missing required field "AttemptEvent.time_taken"`)}
	}
	if _, ok := _c.mutation.WeaknessTarget(); !ok {
		return &ValidationError{Name: "weakness_target", err: errors.New(`ent: missing required field "AttemptEvent.weakness_target"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeInt64, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(attemptevent.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Digits(); ok {
		_spec.SetField(attemptevent.FieldDigits, field.TypeInt, value)
		_node.Digits = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(attemptevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Num1(); ok {
		_spec.SetField(attemptevent.FieldNum1, field.TypeInt, value)
		_node.Num1 = value
	}
	if value, ok := _c.mutation.Num2(); ok {
		_spec.SetField(attemptevent.FieldNum2, field.TypeInt, value)
		_node.Num2 = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(attemptevent.FieldUserAnswer, field.TypeFloat64, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeFloat64, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeTaken(); ok {
		_spec.SetField(attemptevent.FieldTimeTaken, field.TypeFloat64, value)
		_node.TimeTaken = value
	}
	if value, ok := _c.mutation.WeaknessTarget(); ok {
		_spec.SetField(attemptevent.FieldWeaknessTarget, field.TypeBool, value)
		_node.WeaknessTarget = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
