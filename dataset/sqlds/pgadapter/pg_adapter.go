/*
Package pgadapter provides an implementation of the Adapter interface
in the sqlds package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/jayelm/decisiontrees/dataset/sqlds"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter
that works on the database or an error if it cannot be opened.
*/
func New(url string) (sqlds.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database at %s: %v", url, err)
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
