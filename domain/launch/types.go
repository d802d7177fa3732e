package launch

// AllSites is the site filter value meaning "no site filter".
const AllSites = "ALL"

// AllSitesLabel is the display label of the AllSites option
const AllSitesLabel = "All Sites"

// Outcome is the categorical label derived from a launch's class flag
type Outcome string

const (
	OutcomeSuccess Outcome = "Success"
	OutcomeFailure Outcome = "Failure"
)

// OutcomeFor maps a success flag to its outcome label
func OutcomeFor(success bool) Outcome {
	if success {
		return OutcomeSuccess
	}
	return OutcomeFailure
}

// Class returns the underlying 0/1 class value of the outcome
func (o Outcome) Class() int {
	if o == OutcomeSuccess {
		return 1
	}
	return 0
}

func (o Outcome) String() string {
	return string(o)
}

// LaunchRecord is one row of the launch dataset.
// Outcome is always derived from Success; use NewLaunchRecord to build one.
type LaunchRecord struct {
	Site            string  `json:"site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	BoosterCategory string  `json:"booster_category"`
	Success         bool    `json:"success"`
	Outcome         Outcome `json:"outcome"`
}

// NewLaunchRecord creates a record with its outcome derived from success
func NewLaunchRecord(site string, payloadMassKg float64, boosterCategory string, success bool) LaunchRecord {
	return LaunchRecord{
		Site:            site,
		PayloadMassKg:   payloadMassKg,
		BoosterCategory: boosterCategory,
		Success:         success,
		Outcome:         OutcomeFor(success),
	}
}

// Class returns the stored 0/1 class flag
func (r LaunchRecord) Class() int {
	if r.Success {
		return 1
	}
	return 0
}

// SiteOption is a selectable entry of the site dropdown
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChartPoint is a single labelled count of a ChartSeries
type ChartPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// ChartSeries is an ordered sequence of labelled counts for a pie-style chart
type ChartSeries struct {
	Title  string       `json:"title"`
	Site   string       `json:"site"`
	Points []ChartPoint `json:"points"`
}

// Total sums the counts of all points
func (s ChartSeries) Total() int {
	total := 0
	for _, p := range s.Points {
		total += p.Count
	}
	return total
}

// ScatterPoint is one launch in the payload/outcome scatter chart
type ScatterPoint struct {
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Outcome         Outcome `json:"outcome"`
	Class           int     `json:"class"`
	BoosterCategory string  `json:"booster_category"`
}

// PayloadBounds are the absolute payload limits of the full dataset
type PayloadBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
