package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jayelm/decisiontrees/dataset"
	"github.com/jayelm/decisiontrees/dataset/csv"
	"github.com/jayelm/decisiontrees/dataset/mongods"
	"github.com/jayelm/decisiontrees/dataset/sqlds"
	"github.com/jayelm/decisiontrees/dataset/sqlds/pgadapter"
	"github.com/jayelm/decisiontrees/dataset/sqlds/sqlite3adapter"
	"github.com/jayelm/decisiontrees/dataset/yaml"
	mgo "gopkg.in/mgo.v2"
)

// dataInputConfig holds the flags shared by every command that reads
// a dataset: where to read it from and how to interpret it.
type dataInputConfig struct {
	*rootCmdConfig
	metadataInput string
	maxDBConns    int
}

/*
attributes parses the attribute metadata flag when given. A nil
result with a nil error means no metadata was requested and values go
unvalidated.
*/
func (dic *dataInputConfig) attributes() ([]dataset.Attribute, error) {
	if dic.metadataInput == "" {
		return nil, nil
	}
	dic.Logf("Reading attributes from metadata at %s...", dic.metadataInput)
	attributes, err := yaml.ReadAttributesFromFile(dic.metadataInput)
	if err != nil {
		return nil, err
	}
	dic.Logf("Attributes from metadata read")
	return attributes, nil
}

/*
readDataset reads a dataset from the given input: an empty string
reads CSV from STDIN, a postgresql:// URL reads a PostgreSQL samples
table, a mongodb:// URL reads a MongoDB samples collection, a path
ending in .db reads a SQLite3 samples table, and anything else is
opened as a CSV file.
*/
func (dic *dataInputConfig) readDataset(ctx context.Context, input string, attributes []dataset.Attribute) (*dataset.Dataset, error) {
	if input == "" {
		dic.Logf("Reading dataset from STDIN...")
		return csv.ReadDataset(ctx, os.Stdin, attributes)
	}
	if strings.HasPrefix(input, "postgresql://") {
		dic.Logf("Creating PostgreSQL adapter for url %s to read dataset...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlds.ReadDataset(ctx, adapter, attributes)
	}
	if strings.HasPrefix(input, "mongodb://") {
		dic.Logf("Dialing %s to read dataset...", input)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to mongodb at %s: %v", input, err)
		}
		defer session.Close()
		return mongods.ReadDataset(ctx, session, attributes)
	}
	if strings.HasSuffix(input, ".db") {
		dic.Logf("Creating SQLite3 adapter for file %s to read dataset...", input)
		adapter, err := sqlite3adapter.New(input, dic.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlds.ReadDataset(ctx, adapter, attributes)
	}
	dic.Logf("Opening %s to read dataset...", input)
	return csv.ReadDatasetFromFilePath(ctx, input, attributes)
}

/*
dependentAttribute resolves the class-attribute flag against a
dataset's schema: an empty flag selects the last schema column.
*/
func dependentAttribute(flag string, ds *dataset.Dataset) (string, error) {
	schema := ds.Schema()
	if flag == "" {
		return schema[len(schema)-1], nil
	}
	for _, a := range schema {
		if a == flag {
			return flag, nil
		}
	}
	return "", fmt.Errorf("class attribute %q is not defined on the dataset", flag)
}
