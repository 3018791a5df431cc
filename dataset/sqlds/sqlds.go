/*
Package sqlds reads datasets from SQL databases through an Adapter
interface. Adapters for specific engines live in subpackages; see
sqlite3adapter and pgadapter.
*/
package sqlds

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jayelm/decisiontrees/dataset"
)

/*
Adapter gives access to a database holding training data in a samples
table: one TEXT column per attribute, one row per record. An optional
id column is ignored.
*/
type Adapter interface {
	// DB returns the handle to the underlying database.
	DB() *sql.DB
	// SamplesQuery returns the SQL statement that selects every
	// sample row with its attribute columns.
	SamplesQuery() string
	// Close closes the underlying database.
	Close() error
}

/*
ReadDataset takes an Adapter and optional attribute metadata and
returns a dataset with every row of the adapter's samples table. The
schema order is the column order of the query result; when metadata
is given, values are validated against it.
*/
func ReadDataset(ctx context.Context, a Adapter, attributes []dataset.Attribute) (*dataset.Dataset, error) {
	rows, err := a.DB().QueryContext(ctx, a.SamplesQuery())
	if err != nil {
		return nil, fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading sample columns: %v", err)
	}
	schema := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == "id" {
			continue
		}
		schema = append(schema, c)
	}
	byName := make(map[string]dataset.Attribute)
	for _, attr := range attributes {
		byName[attr.Name] = attr
	}
	if attributes != nil {
		for _, c := range schema {
			if _, ok := byName[c]; !ok {
				return nil, fmt.Errorf("samples column %q references an undeclared attribute", c)
			}
		}
	}
	var records []dataset.Record
	for rows.Next() {
		holders := make([]interface{}, len(columns))
		for i := range holders {
			holders[i] = new(sql.NullString)
		}
		if err := rows.Scan(holders...); err != nil {
			return nil, fmt.Errorf("scanning sample row: %v", err)
		}
		values := make(map[string]string, len(schema))
		for i, c := range columns {
			if c == "id" {
				continue
			}
			ns := holders[i].(*sql.NullString)
			if !ns.Valid {
				return nil, fmt.Errorf("sample row %d has no value for attribute %q", len(records), c)
			}
			if attr, ok := byName[c]; ok && len(attr.Values) > 0 && !admits(attr, ns.String) {
				return nil, fmt.Errorf("sample row %d: invalid value %q for attribute %q", len(records), ns.String, c)
			}
			values[c] = ns.String
		}
		records = append(records, dataset.NewRecord(values))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating samples: %v", err)
	}
	return dataset.New(ctx, schema, records)
}

func admits(a dataset.Attribute, value string) bool {
	for _, v := range a.Values {
		if v == value {
			return true
		}
	}
	return false
}
