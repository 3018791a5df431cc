/*
Package inputrecord provides an implementation of dataset.Record
whose values are read lazily from an io.Reader, so that a decision
over the record only asks for the attributes along the decision path.
*/
package inputrecord

import (
	"bufio"
	"context"
	"io"

	"github.com/jayelm/decisiontrees/dataset"
)

/*
ValueRequester represents a way to ask for attribute values and to
reject unacceptable ones.
*/
type ValueRequester interface {
	RequestValueFor(attribute string, values []string) error
	RejectValueFor(attribute string, values []string, value string) error
}

type readRecord struct {
	obtainedValues map[string]string
	scanner        *bufio.Scanner
	valueRequester ValueRequester
	attributes     []dataset.Attribute
}

/*
New takes an io.Reader, a slice of attributes and a ValueRequester
and returns a Record.

The returned record's ValueFor method obtains values by first
requesting them through the ValueRequester and then parsing them from
the reader, one line per value. Lines that are not admissible for the
attribute are rejected with the ValueRequester's RejectValueFor
method and read again. Obtained values are kept, so an attribute is
asked about at most once.
*/
func New(r io.Reader, attributes []dataset.Attribute, valueRequester ValueRequester) dataset.Record {
	return &readRecord{
		obtainedValues: make(map[string]string),
		scanner:        bufio.NewScanner(r),
		valueRequester: valueRequester,
		attributes:     attributes,
	}
}

func (rr *readRecord) ValueFor(ctx context.Context, attribute string) (string, error) {
	if value, ok := rr.obtainedValues[attribute]; ok {
		return value, nil
	}
	var declared *dataset.Attribute
	for i := range rr.attributes {
		if rr.attributes[i].Name == attribute {
			declared = &rr.attributes[i]
			break
		}
	}
	if declared == nil {
		return "", dataset.NewSchemaError("have no information about attribute %q, do not know how to read its value", attribute)
	}
	if err := rr.valueRequester.RequestValueFor(declared.Name, declared.Values); err != nil {
		return "", err
	}
	return rr.readValue(ctx, declared)
}

func (rr *readRecord) Attributes() []string {
	names := make([]string, len(rr.attributes))
	for i, a := range rr.attributes {
		names[i] = a.Name
	}
	return names
}

func (rr *readRecord) readValue(ctx context.Context, a *dataset.Attribute) (string, error) {
	for rr.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line := rr.scanner.Text()
		if len(a.Values) == 0 || admits(a, line) {
			rr.obtainedValues[a.Name] = line
			return line, nil
		}
		if err := rr.valueRequester.RejectValueFor(a.Name, a.Values, line); err != nil {
			return "", err
		}
	}
	if err := rr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func admits(a *dataset.Attribute, value string) bool {
	for _, v := range a.Values {
		if v == value {
			return true
		}
	}
	return false
}
