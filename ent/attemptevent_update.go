// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prajwalk/mathsprint/ent/attemptevent"
	"github.com/prajwalk/mathsprint/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AttemptEventUpdate) SetOperation(v string) *AttemptEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOperation(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetDigits sets the "digits" field.
func (_u *AttemptEventUpdate) SetDigits(v int) *AttemptEventUpdate {
	_u.mutation.ResetDigits()
	_u.mutation.SetDigits(v)
	return _u
}

// SetNillableDigits sets the "digits" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDigits(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDigits(*v)
	}
	return _u
}

// AddDigits adds value to the "digits" field.
func (_u *AttemptEventUpdate) AddDigits(v int) *AttemptEventUpdate {
	_u.mutation.AddDigits(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AttemptEventUpdate) SetQuestion(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestion(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetNum1 sets the "num1" field.
func (_u *AttemptEventUpdate) SetNum1(v int) *AttemptEventUpdate {
	_u.mutation.ResetNum1()
	_u.mutation.SetNum1(v)
	return _u
}

// SetNillableNum1 sets the "num1" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableNum1(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetNum1(*v)
	}
	return _u
}

// AddNum1 adds value to the "num1" field.
func (_u *AttemptEventUpdate) AddNum1(v int) *AttemptEventUpdate {
	_u.mutation.AddNum1(v)
	return _u
}

// SetNum2 sets the "num2" field.
func (_u *AttemptEventUpdate) SetNum2(v int) *AttemptEventUpdate {
	_u.mutation.ResetNum2()
	_u.mutation.SetNum2(v)
	return _u
}

// SetNillableNum2 sets the "num2" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableNum2(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetNum2(*v)
	}
	return _u
}

// AddNum2 adds value to the "num2" field.
func (_u *AttemptEventUpdate) AddNum2(v int) *AttemptEventUpdate {
	_u.mutation.AddNum2(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptEventUpdate) SetUserAnswer(v float64) *AttemptEventUpdate {
	_u.mutation.ResetUserAnswer()
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserAnswer(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// AddUserAnswer adds value to the "user_answer" field.
func (_u *AttemptEventUpdate) AddUserAnswer(v float64) *AttemptEventUpdate {
	_u.mutation.AddUserAnswer(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdate) SetCorrectAnswer(v float64) *AttemptEventUpdate {
	_u.mutation.ResetCorrectAnswer()
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswer(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// AddCorrectAnswer adds value to the "correct_answer" field.
func (_u *AttemptEventUpdate) AddCorrectAnswer(v float64) *AttemptEventUpdate {
	_u.mutation.AddCorrectAnswer(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeTaken sets the "time_taken" field.
func (_u *AttemptEventUpdate) SetTimeTaken(v float64) *AttemptEventUpdate {
	_u.mutation.ResetTimeTaken()
	_u.mutation.SetTimeTaken(v)
	return _u
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeTaken(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeTaken(*v)
	}
	return _u
}

// AddTimeTaken adds value to the "time_taken" field.
func (_u *AttemptEventUpdate) AddTimeTaken(v float64) *AttemptEventUpdate {
	_u.mutation.AddTimeTaken(v)
	return _u
}

// SetWeaknessTarget sets the "weakness_target" field.
func (_u *AttemptEventUpdate) SetWeaknessTarget(v bool) *AttemptEventUpdate {
	_u.mutation.SetWeaknessTarget(v)
	return _u
}

// SetNillableWeaknessTarget sets the "weakness_target" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableWeaknessTarget(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetWeaknessTarget(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := attemptevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(attemptevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Digits(); ok {
		_spec.SetField(attemptevent.FieldDigits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDigits(); ok {
		_spec.AddField(attemptevent.FieldDigits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(attemptevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Num1(); ok {
		_spec.SetField(attemptevent.FieldNum1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNum1(); ok {
		_spec.AddField(attemptevent.FieldNum1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Num2(); ok {
		_spec.SetField(attemptevent.FieldNum2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNum2(); ok {
		_spec.AddField(attemptevent.FieldNum2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptevent.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserAnswer(); ok {
		_spec.AddField(attemptevent.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswer(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeTaken(); ok {
		_spec.SetField(attemptevent.FieldTimeTaken, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeTaken(); ok {
		_spec.AddField(attemptevent.FieldTimeTaken, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeaknessTarget(); ok {
		_spec.SetField(attemptevent.FieldWeaknessTarget, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *AttemptEventUpdateOne) SetOperation(v string) *AttemptEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOperation(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetDigits sets the "digits" field.
func (_u *AttemptEventUpdateOne) SetDigits(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDigits()
	_u.mutation.SetDigits(v)
	return _u
}

// SetNillableDigits sets the "digits" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDigits(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDigits(*v)
	}
	return _u
}

// AddDigits adds value to the "digits" field.
func (_u *AttemptEventUpdateOne) AddDigits(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDigits(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AttemptEventUpdateOne) SetQuestion(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestion(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetNum1 sets the "num1" field.
func (_u *AttemptEventUpdateOne) SetNum1(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetNum1()
	_u.mutation.SetNum1(v)
	return _u
}

// SetNillableNum1 sets the "num1" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableNum1(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetNum1(*v)
	}
	return _u
}

// AddNum1 adds value to the "num1" field.
func (_u *AttemptEventUpdateOne) AddNum1(v int) *AttemptEventUpdateOne {
	_u.mutation.AddNum1(v)
	return _u
}

// SetNum2 sets the "num2" field.
func (_u *AttemptEventUpdateOne) SetNum2(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetNum2()
	_u.mutation.SetNum2(v)
	return _u
}

// SetNillableNum2 sets the "num2" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableNum2(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetNum2(*v)
	}
	return _u
}

// AddNum2 adds value to the "num2" field.
func (_u *AttemptEventUpdateOne) AddNum2(v int) *AttemptEventUpdateOne {
	_u.mutation.AddNum2(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptEventUpdateOne) SetUserAnswer(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetUserAnswer()
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserAnswer(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// AddUserAnswer adds value to the "user_answer" field.
func (_u *AttemptEventUpdateOne) AddUserAnswer(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddUserAnswer(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswer(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetCorrectAnswer()
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswer(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// AddCorrectAnswer adds value to the "correct_answer" field.
func (_u *AttemptEventUpdateOne) AddCorrectAnswer(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddCorrectAnswer(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeTaken sets the "time_taken" field.
func (_u *AttemptEventUpdateOne) SetTimeTaken(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeTaken()
	_u.mutation.SetTimeTaken(v)
	return _u
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeTaken(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeTaken(*v)
	}
	return _u
}

// AddTimeTaken adds value to the "time_taken" field.
func (_u *AttemptEventUpdateOne) AddTimeTaken(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddTimeTaken(v)
	return _u
}

// SetWeaknessTarget sets the "weakness_target" field.
func (_u *AttemptEventUpdateOne) SetWeaknessTarget(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetWeaknessTarget(v)
	return _u
}

// SetNillableWeaknessTarget sets the "weakness_target" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableWeaknessTarget(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetWeaknessTarget(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := attemptevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(attemptevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Digits(); ok {
		_spec.SetField(attemptevent.FieldDigits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDigits(); ok {
		_spec.AddField(attemptevent.FieldDigits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(attemptevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Num1(); ok {
		_spec.SetField(attemptevent.FieldNum1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNum1(); ok {
		_spec.AddField(attemptevent.FieldNum1, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Num2(); ok {
		_spec.SetField(attemptevent.FieldNum2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNum2(); ok {
		_spec.AddField(attemptevent.FieldNum2, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptevent.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUserAnswer(); ok {
		_spec.AddField(attemptevent.FieldUserAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswer(); ok {
		_spec.AddField(attemptevent.FieldCorrectAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeTaken(); ok {
		_spec.SetField(attemptevent.FieldTimeTaken, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeTaken(); ok {
		_spec.AddField(attemptevent.FieldTimeTaken, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeaknessTarget(); ok {
		_spec.SetField(attemptevent.FieldWeaknessTarget, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
