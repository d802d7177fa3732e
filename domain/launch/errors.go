package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad matches every LoadError
	ErrLoad = errors.New("launch dataset load failed")
	// ErrUnknownSite matches every UnknownSiteError
	ErrUnknownSite = errors.New("unknown launch site")
)

// LoadError reports a source that could not be turned into a Dataset.
// Row is 1-based over data rows and zero when the failure is not row specific.
type LoadError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load launch records from %s", e.Source)
	if e.Row > 0 {
		msg += fmt.Sprintf(": row %d", e.Row)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(": column %q", e.Column)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// NewLoadError wraps cause as a LoadError for source
func NewLoadError(source string, cause error) *LoadError {
	return &LoadError{Source: source, Err: cause}
}

// UnknownSiteError reports a site filter that is neither AllSites nor in the catalog
type UnknownSiteError struct {
	Site string
}

func (e *UnknownSiteError) Error() string {
	return fmt.Sprintf("unknown launch site %q", e.Site)
}

func (e *UnknownSiteError) Is(target error) bool {
	return target == ErrUnknownSite
}

// IsUnknownSite reports whether err is (or wraps) an UnknownSiteError
func IsUnknownSite(err error) bool {
	return errors.Is(err, ErrUnknownSite)
}

// IsLoadError reports whether err is (or wraps) a LoadError
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoad)
}
