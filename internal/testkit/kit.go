package testkit

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"launchdash/domain/launch"
)

// Sites used by the scenario fixture
const (
	SiteA = "siteA"
	SiteB = "siteB"
)

// ScenarioRecords returns the four-launch fixture:
// (siteA, 500, v1, success), (siteA, 2000, v1, failure),
// (siteB, 7000, v2, success), (siteB, 9000, v2, success).
func ScenarioRecords() []launch.LaunchRecord {
	return []launch.LaunchRecord{
		launch.NewLaunchRecord(SiteA, 500, "v1", true),
		launch.NewLaunchRecord(SiteA, 2000, "v1", false),
		launch.NewLaunchRecord(SiteB, 7000, "v2", true),
		launch.NewLaunchRecord(SiteB, 9000, "v2", true),
	}
}

// ScenarioDataset wraps ScenarioRecords in a Dataset
func ScenarioDataset() *launch.Dataset {
	return launch.NewDataset("scenario", ScenarioRecords())
}

// FleetRecords returns a larger fixture spread over four sites and several
// booster categories. CCAFS SLC-40 has no successful launch.
func FleetRecords() []launch.LaunchRecord {
	return []launch.LaunchRecord{
		launch.NewLaunchRecord("CCAFS LC-40", 0, "v1.0", false),
		launch.NewLaunchRecord("CCAFS LC-40", 525, "v1.0", false),
		launch.NewLaunchRecord("CCAFS LC-40", 3170, "v1.1", false),
		launch.NewLaunchRecord("VAFB SLC-4E", 500, "v1.1", false),
		launch.NewLaunchRecord("CCAFS LC-40", 2477, "FT", true),
		launch.NewLaunchRecord("KSC LC-39A", 2490, "FT", true),
		launch.NewLaunchRecord("KSC LC-39A", 5600, "FT", false),
		launch.NewLaunchRecord("VAFB SLC-4E", 9600, "FT", true),
		launch.NewLaunchRecord("KSC LC-39A", 4990, "B4", true),
		launch.NewLaunchRecord("CCAFS SLC-40", 2150, "B4", false),
		launch.NewLaunchRecord("VAFB SLC-4E", 9600, "B4", true),
		launch.NewLaunchRecord("KSC LC-39A", 6761, "FT", false),
		launch.NewLaunchRecord("CCAFS LC-40", 4696, "FT", true),
	}
}

// FleetDataset wraps FleetRecords in a Dataset
func FleetDataset() *launch.Dataset {
	return launch.NewDataset("fleet", FleetRecords())
}

// Header is the column layout written by the CSV and XLSX helpers,
// mirroring the published launch table including its unnamed index column.
var Header = []string{
	"",
	"Flight Number",
	launch.ColumnLaunchSite,
	launch.ColumnClass,
	launch.ColumnPayloadMass,
	launch.ColumnBoosterCategory,
}

// Rows renders records as table rows, header first
func Rows(records []launch.LaunchRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, Header)
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(i + 1),
			r.Site,
			strconv.Itoa(r.Class()),
			strconv.FormatFloat(r.PayloadMassKg, 'f', 1, 64),
			r.BoosterCategory,
		})
	}
	return rows
}

// EncodeCSV renders rows as CSV bytes
func EncodeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to encode CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV writes rows to dir/name and returns the file path
func WriteCSV(dir, name string, rows [][]string) (string, error) {
	data, err := EncodeCSV(rows)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}
	return path, nil
}

// WriteXLSX writes rows into sheet of a new workbook at dir/name.
// Numeric data cells are stored as numbers, like a spreadsheet export.
func WriteXLSX(dir, name, sheet string, rows [][]string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return "", fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			if n, err := strconv.ParseFloat(v, 64); err == nil && i > 0 {
				cells[j] = n
			} else {
				cells[j] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}
