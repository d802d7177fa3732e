package postgres

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DefaultLaunchTable is the table read when none is configured
const DefaultLaunchTable = "spacex_launches"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// LaunchRow is one launch as stored in Postgres.
// Expected schema:
//
//	CREATE TABLE spacex_launches (
//	    flight_number            INTEGER PRIMARY KEY,
//	    launch_site              TEXT NOT NULL,
//	    payload_mass_kg          DOUBLE PRECISION NOT NULL,
//	    class                    SMALLINT NOT NULL,
//	    booster_version_category TEXT NOT NULL
//	);
type LaunchRow struct {
	Site            string  `db:"launch_site"`
	PayloadMassKg   float64 `db:"payload_mass_kg"`
	Class           int     `db:"class"`
	BoosterCategory string  `db:"booster_version_category"`
}

// LaunchRepository reads launch rows from a Postgres table
type LaunchRepository struct {
	db    *sqlx.DB
	table string
}

// Open connects to Postgres and verifies the connection
func Open(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// NewLaunchRepository creates a repository reading table. An empty table
// name selects DefaultLaunchTable.
func NewLaunchRepository(db *sqlx.DB, table string) (*LaunchRepository, error) {
	if table == "" {
		table = DefaultLaunchTable
	}
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &LaunchRepository{db: db, table: table}, nil
}

// Table returns the table the repository reads
func (r *LaunchRepository) Table() string {
	return r.table
}

// ListLaunches returns every launch ordered by flight number
func (r *LaunchRepository) ListLaunches(ctx context.Context) ([]LaunchRow, error) {
	query := fmt.Sprintf(`SELECT launch_site, payload_mass_kg, class, booster_version_category
	FROM %s ORDER BY flight_number`, r.table)

	var rows []LaunchRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list launches from %s: %w", r.table, err)
	}
	return rows, nil
}
