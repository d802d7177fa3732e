// Package dataset loads the launch records table from a CSV file, an Excel
// workbook or a Postgres table into an immutable launch.Dataset.
package dataset

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"launchdash/adapters/excel"
	"launchdash/adapters/postgres"
	"launchdash/domain/launch"
	"launchdash/internal"
)

// Source selects where launch records are read from. DatabaseURL takes
// precedence over FilePath when both are set.
type Source struct {
	FilePath    string
	Sheet       string
	DatabaseURL string
	Table       string
}

// String describes the source without credentials
func (s Source) String() string {
	if s.DatabaseURL != "" {
		table := s.Table
		if table == "" {
			table = postgres.DefaultLaunchTable
		}
		return "postgres:" + table
	}
	if s.Sheet != "" {
		return s.FilePath + "#" + s.Sheet
	}
	return s.FilePath
}

// Loader reads launch records and builds datasets
type Loader struct {
	logger *internal.Logger
}

// NewLoader creates a loader logging through logger
func NewLoader(logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Loader{logger: logger.With("Loader")}
}

// Load reads src into a Dataset. Every failure is a *launch.LoadError.
func (l *Loader) Load(ctx context.Context, src Source) (*launch.Dataset, error) {
	start := time.Now()

	var (
		ds  *launch.Dataset
		err error
	)
	switch {
	case src.DatabaseURL != "":
		ds, err = l.loadDatabase(ctx, src)
	case src.FilePath != "":
		ds, err = l.LoadFile(excel.ReaderConfig{FilePath: src.FilePath, Sheet: src.Sheet})
	default:
		err = launch.NewLoadError("<unset>", fmt.Errorf("no data file or database configured"))
	}
	if err != nil {
		return nil, err
	}

	bounds := ds.PayloadBounds()
	l.logger.Info("Loaded %d launches from %s in %s (%d sites, payload %.0f-%.0f kg)",
		ds.Len(), src, time.Since(start).Round(time.Millisecond), len(ds.Sites())-1, bounds.Min, bounds.Max)
	return ds, nil
}

// LoadFile reads a .csv or .xlsx file
func (l *Loader) LoadFile(cfg excel.ReaderConfig) (*launch.Dataset, error) {
	table, err := excel.NewDataReader(cfg).ReadData()
	if err != nil {
		return nil, launch.NewLoadError(cfg.FilePath, err)
	}
	return FromTable(cfg.FilePath, table)
}

// LoadReader reads CSV from r; name identifies the stream in errors
func (l *Loader) LoadReader(name string, r io.Reader) (*launch.Dataset, error) {
	table, err := excel.ReadCSV(r)
	if err != nil {
		return nil, launch.NewLoadError(name, err)
	}
	return FromTable(name, table)
}

func (l *Loader) loadDatabase(ctx context.Context, src Source) (*launch.Dataset, error) {
	name := src.String()

	db, err := postgres.Open(ctx, src.DatabaseURL)
	if err != nil {
		return nil, launch.NewLoadError(name, err)
	}
	defer db.Close()

	repo, err := postgres.NewLaunchRepository(db, src.Table)
	if err != nil {
		return nil, launch.NewLoadError(name, err)
	}
	return FromRepository(ctx, name, repo)
}

// FromRepository builds a Dataset from the rows of repo
func FromRepository(ctx context.Context, name string, repo *postgres.LaunchRepository) (*launch.Dataset, error) {
	rows, err := repo.ListLaunches(ctx)
	if err != nil {
		return nil, launch.NewLoadError(name, err)
	}

	records := make([]launch.LaunchRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := buildRecord(row.Site, row.PayloadMassKg, float64(row.Class), row.BoosterCategory)
		if err != nil {
			err.Source = name
			err.Row = i + 1
			return nil, err
		}
		records = append(records, rec)
	}
	return launch.NewDataset(name, records), nil
}

// FromTable validates the required columns of table and converts each row
func FromTable(source string, table *excel.Table) (*launch.Dataset, error) {
	if missing := table.MissingColumns(launch.RequiredColumns); len(missing) > 0 {
		return nil, launch.NewLoadError(source, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	records := make([]launch.LaunchRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec, err := parseRow(row)
		if err != nil {
			err.Source = source
			err.Row = i + 1
			return nil, err
		}
		records = append(records, rec)
	}
	return launch.NewDataset(source, records), nil
}

func parseRow(row excel.RawRowData) (launch.LaunchRecord, *launch.LoadError) {
	payload, err := strconv.ParseFloat(row[launch.ColumnPayloadMass], 64)
	if err != nil {
		return launch.LaunchRecord{}, &launch.LoadError{Column: launch.ColumnPayloadMass, Err: fmt.Errorf("invalid payload mass %q", row[launch.ColumnPayloadMass])}
	}
	class, err := strconv.ParseFloat(row[launch.ColumnClass], 64)
	if err != nil {
		return launch.LaunchRecord{}, &launch.LoadError{Column: launch.ColumnClass, Err: fmt.Errorf("invalid class %q", row[launch.ColumnClass])}
	}
	return buildRecord(row[launch.ColumnLaunchSite], payload, class, row[launch.ColumnBoosterCategory])
}

func buildRecord(site string, payload, class float64, booster string) (launch.LaunchRecord, *launch.LoadError) {
	if strings.TrimSpace(site) == "" {
		return launch.LaunchRecord{}, &launch.LoadError{Column: launch.ColumnLaunchSite, Err: fmt.Errorf("empty launch site")}
	}
	if math.IsNaN(payload) || math.IsInf(payload, 0) || payload < 0 {
		return launch.LaunchRecord{}, &launch.LoadError{Column: launch.ColumnPayloadMass, Err: fmt.Errorf("payload mass must be a non-negative number, got %v", payload)}
	}
	if class != 0 && class != 1 {
		return launch.LaunchRecord{}, &launch.LoadError{Column: launch.ColumnClass, Err: fmt.Errorf("class must be 0 or 1, got %v", class)}
	}
	return launch.NewLaunchRecord(site, payload, booster, class == 1), nil
}
