/*
Package csv reads datasets from and writes records to delimited
files. The header row carries the attribute schema; by convention the
dependent attribute is the last column.
*/
package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jayelm/decisiontrees/dataset"
)

/*
Writer is an interface for a destination records can be written to.
*/
type Writer interface {
	// Write attempts to write the given record and returns an error
	// if it cannot be written.
	Write(ctx context.Context, r dataset.Record) error
	// Count returns the total number of records written so far.
	Count() int
	// Flush ensures any pending writes finish before returning.
	Flush() error
}

type csvWriter struct {
	count  int
	schema []string
	w      *csv.Writer
}

/*
ReadDataset takes an io.Reader for a CSV stream and an optional slice
of attribute metadata and returns the dataset parsed from it.

The first row is expected to name every attribute; the following rows
must hold one value per attribute. When metadata is given, every
header column must be declared in it and every value must be
admissible for its attribute.
*/
func ReadDataset(ctx context.Context, reader io.Reader, attributes []dataset.Attribute) (*dataset.Dataset, error) {
	var schema []string
	var records []dataset.Record
	err := ReadByRecord(ctx, reader, attributes, func(_ int, header []string, r dataset.Record) (bool, error) {
		schema = header
		records = append(records, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, fmt.Errorf("CSV stream has no data rows")
	}
	return dataset.New(ctx, schema, records)
}

/*
ReadByRecord takes an io.Reader for a CSV stream, optional attribute
metadata and a lambda on a record index, the header schema and a
record. It parses records one by one and calls the lambda for each;
parsing continues while the lambda returns true.
*/
func ReadByRecord(ctx context.Context, reader io.Reader, attributes []dataset.Attribute, lambda func(int, []string, dataset.Record) (bool, error)) error {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	byName := attributesByName(attributes)
	if attributes != nil {
		for _, name := range header {
			if _, ok := byName[name]; !ok {
				return fmt.Errorf("parsing header: reference to undeclared attribute %q", name)
			}
		}
	}
	for l := 2; ; l++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		record, err := parseRecord(row, header, byName)
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(l-2, header, record)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadDatasetFromFilePath takes a filepath, opens it and uses
ReadDataset to parse a dataset from it. An empty filepath reads from
os.Stdin instead.
*/
func ReadDatasetFromFilePath(ctx context.Context, filepath string, attributes []dataset.Attribute) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening dataset at %s: %v", filepath, err)
		}
		defer f.Close()
	}
	ds, err := ReadDataset(ctx, f, attributes)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return ds, err
}

/*
NewWriter takes an io.Writer and an attribute schema and returns a
Writer that writes the schema header immediately and one CSV row per
record afterwards.
*/
func NewWriter(writer io.Writer, schema []string) (Writer, error) {
	w := csv.NewWriter(writer)
	if err := w.Write(schema); err != nil {
		return nil, fmt.Errorf("writing CSV header: %v", err)
	}
	return &csvWriter{schema: schema, w: w}, nil
}

func (cw *csvWriter) Write(ctx context.Context, r dataset.Record) error {
	row := make([]string, len(cw.schema))
	for i, a := range cw.schema {
		v, err := r.ValueFor(ctx, a)
		if err != nil {
			return err
		}
		row[i] = v
	}
	if err := cw.w.Write(row); err != nil {
		return fmt.Errorf("writing CSV record: %v", err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

func attributesByName(attributes []dataset.Attribute) map[string]dataset.Attribute {
	if attributes == nil {
		return nil
	}
	byName := make(map[string]dataset.Attribute, len(attributes))
	for _, a := range attributes {
		byName[a.Name] = a
	}
	return byName
}

func parseRecord(row, header []string, byName map[string]dataset.Attribute) (dataset.Record, error) {
	if len(row) != len(header) {
		return nil, fmt.Errorf("row has %d values, header has %d columns", len(row), len(header))
	}
	values := make(map[string]string, len(header))
	for i, name := range header {
		v := row[i]
		if byName != nil {
			if a := byName[name]; len(a.Values) > 0 && !admits(a, v) {
				return nil, fmt.Errorf("invalid value %q for attribute %q", v, name)
			}
		}
		values[name] = v
	}
	return dataset.NewRecord(values), nil
}

func admits(a dataset.Attribute, value string) bool {
	for _, v := range a.Values {
		if v == value {
			return true
		}
	}
	return false
}
