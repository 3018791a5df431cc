/*
Package mongods reads datasets from a MongoDB database. Records are
expected as documents of the samples collection of the session's
default database, one string field per attribute.
*/
package mongods

import (
	"context"
	"fmt"

	"github.com/jayelm/decisiontrees/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const samplesCollectionName = "samples"

/*
ReadDataset takes a MongoDB session and attribute metadata and
returns a dataset with every document of the samples collection.

Documents carry no column order, so the metadata is mandatory here:
its declaration order becomes the schema order. Fields outside the
metadata (including _id) are ignored; a document missing a declared
attribute is an error.
*/
func ReadDataset(ctx context.Context, session *mgo.Session, attributes []dataset.Attribute) (*dataset.Dataset, error) {
	if len(attributes) == 0 {
		return nil, fmt.Errorf("reading mongodb samples requires attribute metadata to fix the schema order")
	}
	schema := make([]string, len(attributes))
	for i, a := range attributes {
		schema[i] = a.Name
	}
	iter := session.DB("").C(samplesCollectionName).Find(nil).Iter()
	defer iter.Close()
	var records []dataset.Record
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := make(map[string]string, len(attributes))
		for _, a := range attributes {
			raw, ok := doc[a.Name]
			if !ok {
				return nil, fmt.Errorf("sample document %d has no value for attribute %q", len(records), a.Name)
			}
			v := fmt.Sprintf("%v", raw)
			if len(a.Values) > 0 && !admits(a, v) {
				return nil, fmt.Errorf("sample document %d: invalid value %q for attribute %q", len(records), v, a.Name)
			}
			values[a.Name] = v
		}
		records = append(records, dataset.NewRecord(values))
		doc = bson.M{}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("iterating mongodb samples: %v", err)
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
