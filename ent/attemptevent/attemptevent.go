// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldDigits holds the string denoting the digits field in the database.
	FieldDigits = "digits"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldNum1 holds the string denoting the num1 field in the database.
	FieldNum1 = "num1"
	// FieldNum2 holds the string denoting the num2 field in the database.
	FieldNum2 = "num2"
	// FieldUserAnswer holds the string denoting the user_answer field in the database.
	FieldUserAnswer = "user_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeTaken holds the string denoting the time_taken field in the database.
	FieldTimeTaken = "time_taken"
	// FieldWeaknessTarget holds the string denoting the weakness_target field in the database.
	FieldWeaknessTarget = "weakness_target"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldSessionID,
	FieldOperation,
	FieldDigits,
	FieldQuestion,
	FieldNum1,
	FieldNum2,
	FieldUserAnswer,
	FieldCorrectAnswer,
	FieldCorrect,
	FieldTimeTaken,
	FieldWeaknessTarget,
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
	// OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	OperationValidator func(string) error
	// DefaultNum1 holds the default value on creation for the "num1" field.
	DefaultNum1 int
	// DefaultNum2 holds the default value on creation for the "num2" field.
	DefaultNum2 int
	// DefaultWeaknessTarget holds the default value on creation for the "weakness_target" field.
	DefaultWeaknessTarget bool
)

// OrderOption defines the ordering options for the AttemptEvent queries.
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

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// ByDigits orders the results by the digits field.
func ByDigits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigits, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByNum1 orders the results by the num1 field.
func ByNum1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNum1, opts...).ToFunc()
}

// ByNum2 orders the results by the num2 field.
func ByNum2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNum2, opts...).ToFunc()
}

// ByUserAnswer orders the results by the user_answer field.
func ByUserAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeTaken orders the results by the time_taken field.
func ByTimeTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTaken, opts...).ToFunc()
}

// ByWeaknessTarget orders the results by the weakness_target field.
func ByWeaknessTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeaknessTarget, opts...).ToFunc()
}
