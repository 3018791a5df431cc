package dataset

import "fmt"

/*
SchemaError is the error returned when a record or a requested
attribute does not match the schema it is evaluated against: a record
with a different attribute set than its dataset, a dependent attribute
that is not a member of the schema, or a lookup of an attribute a
record defines no value for.
*/
type SchemaError struct {
	msg string
}

// NewSchemaError builds a SchemaError from a format string and its
// arguments.
func NewSchemaError(format string, args ...interface{}) *SchemaError {
	return &SchemaError{msg: fmt.Sprintf(format, args...)}
}

func (e *SchemaError) Error() string {
	return e.msg
}
