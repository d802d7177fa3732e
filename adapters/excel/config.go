package excel

// ReaderConfig holds configuration for a spreadsheet data source
type ReaderConfig struct {
	FilePath string `json:"file_path"`
	// Sheet is only used for .xlsx files; empty selects the first sheet
	Sheet string `json:"sheet"`
}

// DefaultReaderConfig returns a config reading the first sheet of path
func DefaultReaderConfig(path string) ReaderConfig {
	return ReaderConfig{FilePath: path}
}
