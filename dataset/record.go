package dataset

import (
	"context"
	"fmt"
	"sort"
)

/*
Record represents an observation: a mapping from attribute names to
discrete string values.

Its ValueFor method returns the value of the record for the attribute
passed as parameter. Implementations are free to obtain the value
lazily, so the method takes a context that may allow cancelling the
retrieval.

Its Attributes method returns the names of the attributes the record
defines a value for.
*/
type Record interface {
	ValueFor(ctx context.Context, attribute string) (string, error)
	Attributes() []string
}

type record struct {
	values     map[string]string
	attributes []string
}

/*
NewRecord takes a map of attribute names to values and returns a
Record backed by it. The record is immutable: the map is copied and
never written to afterwards.
*/
func NewRecord(values map[string]string) Record {
	vs := make(map[string]string, len(values))
	attributes := make([]string, 0, len(values))
	for a, v := range values {
		vs[a] = v
		attributes = append(attributes, a)
	}
	sort.Strings(attributes)
	return &record{values: vs, attributes: attributes}
}

func (r *record) ValueFor(ctx context.Context, attribute string) (string, error) {
	v, ok := r.values[attribute]
	if !ok {
		return "", NewSchemaError("record defines no value for attribute %q", attribute)
	}
	return v, nil
}

func (r *record) Attributes() []string {
	return r.attributes
}

func (r *record) String() string {
	return fmt.Sprintf("[%v]", r.values)
}
