/*
Package sqlite3adapter provides an implementation of the Adapter
interface in the sqlds package that works over a SQLite3 database
file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	"github.com/jayelm/decisiontrees/dataset/sqlds"

	// Import of SQLite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a filepath to a SQLite3 database and a limit for its open
connections (0 meaning no limit) and returns an Adapter that works on
the database or an error if it cannot be opened.
*/
func New(filepath string, maxConns int) (sqlds.Adapter, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database at %s: %v", filepath, err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) SamplesQuery() string {
	return "SELECT * FROM samples"
}

func (a *adapter) Close() error {
	return a.db.Close()
}
