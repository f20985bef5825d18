package stats

import (
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// A Recorder persists a registry's counters into a SQLite database. The
// database is rewritten on every flush, so it always holds the latest
// values. A flush is registered to run at process exit.
type Recorder struct {
	*sql.DB

	registry *Registry
}

// NewRecorder creates a recorder that writes the given registry to the
// database at path (".sqlite3" is appended). An empty path generates a
// unique name.
func NewRecorder(path string, registry *Registry) *Recorder {
	if path == "" {
		path = "dram_stats_" + xid.New().String()
	}

	filename := path + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for statistics: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	r := &Recorder{
		DB:       db,
		registry: registry,
	}

	r.mustExecute(`CREATE TABLE counters (
	Name,
	Value
);`)

	atexit.Register(func() { r.Flush() })

	return r
}

// Flush rewrites the counters table with the registry's current values.
func (r *Recorder) Flush() {
	r.mustExecute("BEGIN TRANSACTION")
	defer r.mustExecute("COMMIT TRANSACTION")

	r.mustExecute("DELETE FROM counters")

	stmt, err := r.Prepare("INSERT INTO counters VALUES (?, ?)")
	if err != nil {
		panic(err)
	}
	defer stmt.Close()

	for _, c := range r.registry.Snapshot() {
		_, err := stmt.Exec(c.Name, c.Value)
		if err != nil {
			panic(err)
		}
	}
}

func (r *Recorder) mustExecute(query string) sql.Result {
	res, err := r.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}
