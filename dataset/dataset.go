/*
Package dataset defines records of labeled training data, datasets
grouping them under a fixed schema, and the counting and filtering
utilities decision-tree induction is built on.
*/
package dataset

import "context"

/*
Attribute describes an attribute as declared by a metadata source: its
name and, optionally, the set of values it admits. An empty Values
slice means any value is admissible.
*/
type Attribute struct {
	Name   string
	Values []string
}

/*
Dataset represents an ordered collection of records sharing a schema.

The set of distinct values observed for every attribute, its domain,
is computed once at construction over the full dataset and preserved
in first-encounter order. Domains drive the enumeration of children
when splitting a node, even for subsets that happen to omit a value.

A dataset is immutable once built.
*/
type Dataset struct {
	schema  []string
	records []Record
	domains map[string][]string
}

/*
New takes an ordered attribute schema and a slice of records and
returns a dataset with them, or a SchemaError if any record does not
define exactly the attributes in the schema.
*/
func New(ctx context.Context, schema []string, records []Record) (*Dataset, error) {
	domains := make(map[string][]string, len(schema))
	seen := make(map[string]map[string]bool, len(schema))
	for _, a := range schema {
		seen[a] = make(map[string]bool)
	}
	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(r.Attributes()) != len(schema) {
			return nil, NewSchemaError("record %d defines %d attributes, schema has %d", i, len(r.Attributes()), len(schema))
		}
		for _, a := range schema {
			v, err := r.ValueFor(ctx, a)
			if err != nil {
				return nil, NewSchemaError("record %d: %v", i, err)
			}
			if !seen[a][v] {
				seen[a][v] = true
				domains[a] = append(domains[a], v)
			}
		}
	}
	ds := &Dataset{
		schema:  append([]string(nil), schema...),
		records: append([]Record(nil), records...),
		domains: domains,
	}
	return ds, nil
}

// Schema returns the ordered attribute names of the dataset,
// dependent attribute included.
func (ds *Dataset) Schema() []string {
	return append([]string(nil), ds.schema...)
}

// Records returns the records of the dataset in their original order.
func (ds *Dataset) Records() []Record {
	return ds.records
}

// Count returns the number of records in the dataset.
func (ds *Dataset) Count() int {
	return len(ds.records)
}

/*
Domain returns the distinct values observed for the given attribute
across the full dataset, in first-encounter order. It returns nil for
attributes outside the schema.
*/
func (ds *Dataset) Domain(attribute string) []string {
	return ds.domains[attribute]
}

/*
IndependentAttributes returns the schema minus the given dependent
attribute, preserving schema order. This is the attribute order fixed
at induction time and required by later decisions.
*/
func (ds *Dataset) IndependentAttributes(dependent string) []string {
	attributes := make([]string, 0, len(ds.schema))
	for _, a := range ds.schema {
		if a != dependent {
			attributes = append(attributes, a)
		}
	}
	return attributes
}

/*
ValueCounts holds the frequency of each value of an attribute within
a subset of records. Values are kept in first-encounter order, which
makes Majority deterministic for a given record ordering.
*/
type ValueCounts struct {
	values []string
	counts map[string]int
	total  int
}

/*
CountValues takes a subset of records and an attribute and returns the
frequency of each of the attribute's values within the subset.
*/
func CountValues(ctx context.Context, subset []Record, attribute string) (*ValueCounts, error) {
	vc := &ValueCounts{counts: make(map[string]int)}
	for _, r := range subset {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := r.ValueFor(ctx, attribute)
		if err != nil {
			return nil, err
		}
		if _, ok := vc.counts[v]; !ok {
			vc.values = append(vc.values, v)
		}
		vc.counts[v]++
		vc.total++
	}
	return vc, nil
}

// Values returns the counted values in first-encounter order.
func (vc *ValueCounts) Values() []string {
	return vc.values
}

// Count returns the frequency of the given value.
func (vc *ValueCounts) Count(value string) int {
	return vc.counts[value]
}

// Distinct returns the number of distinct values counted.
func (vc *ValueCounts) Distinct() int {
	return len(vc.values)
}

// Total returns the number of records counted.
func (vc *ValueCounts) Total() int {
	return vc.total
}

/*
Majority returns the value with the maximum count. Ties are broken in
favor of the value encountered first in the counted subset.
*/
func (vc *ValueCounts) Majority() string {
	var best string
	var bestCount int
	for _, v := range vc.values {
		if vc.counts[v] > bestCount {
			best = v
			bestCount = vc.counts[v]
		}
	}
	return best
}

/*
Filter takes a subset of records, an attribute and a value and returns
the records of the subset whose value for the attribute equals the
given value.
*/
func Filter(ctx context.Context, subset []Record, attribute, value string) ([]Record, error) {
	var filtered []Record
	for _, r := range subset {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := r.ValueFor(ctx, attribute)
		if err != nil {
			return nil, err
		}
		if v == value {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
