// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prajwalk/mathsprint/ent/achievementevent"
	"github.com/prajwalk/mathsprint/ent/attemptevent"
	"github.com/prajwalk/mathsprint/ent/schema"
	"github.com/prajwalk/mathsprint/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescCode is the schema descriptor for code field.
	achievementeventDescCode := achievementeventFields[0].Descriptor()
	// achievementevent.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	achievementevent.CodeValidator = achievementeventDescCode.Validators[0].(func(string) error)
	// achievementeventDescName is the schema descriptor for name field.
	achievementeventDescName := achievementeventFields[1].Descriptor()
	// achievementevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievementevent.NameValidator = achievementeventDescName.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[1].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescOperation is the schema descriptor for operation field.
	attempteventDescOperation := attempteventFields[2].Descriptor()
	// attemptevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	attemptevent.OperationValidator = attempteventDescOperation.Validators[0].(func(string) error)
	// attempteventDescNum1 is the schema descriptor for num1 field.
	attempteventDescNum1 := attempteventFields[5].Descriptor()
	// attemptevent.DefaultNum1 holds the default value on creation for the num1 field.
	attemptevent.DefaultNum1 = attempteventDescNum1.Default.(int)
	// attempteventDescNum2 is the schema descriptor for num2 field.
	attempteventDescNum2 := attempteventFields[6].Descriptor()
	// attemptevent.DefaultNum2 holds the default value on creation for the num2 field.
	attemptevent.DefaultNum2 = attempteventDescNum2.Default.(int)
	// attempteventDescWeaknessTarget is the schema descriptor for weakness_target field.
	attempteventDescWeaknessTarget := attempteventFields[11].Descriptor()
	// attemptevent.DefaultWeaknessTarget holds the default value on creation for the weakness_target field.
	attemptevent.DefaultWeaknessTarget = attempteventDescWeaknessTarget.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescOperation is the schema descriptor for operation field.
	sessioneventDescOperation := sessioneventFields[3].Descriptor()
	// sessionevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	sessionevent.OperationValidator = sessioneventDescOperation.Validators[0].(func(string) error)
	// sessioneventDescAdaptive is the schema descriptor for adaptive field.
	sessioneventDescAdaptive := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAdaptive holds the default value on creation for the adaptive field.
	sessionevent.DefaultAdaptive = sessioneventDescAdaptive.Default.(bool)
	// sessioneventDescQuestions is the schema descriptor for questions field.
	sessioneventDescQuestions := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultQuestions holds the default value on creation for the questions field.
	sessionevent.DefaultQuestions = sessioneventDescQuestions.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescBestStreak is the schema descriptor for best_streak field.
	sessioneventDescBestStreak := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionevent.DefaultBestStreak = sessioneventDescBestStreak.Default.(int)
	// sessioneventDescAvgTime is the schema descriptor for avg_time field.
	sessioneventDescAvgTime := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultAvgTime holds the default value on creation for the avg_time field.
	sessionevent.DefaultAvgTime = sessioneventDescAvgTime.Default.(float64)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
