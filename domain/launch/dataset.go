package launch

import (
	"github.com/montanaflynn/stats"

	"launchdash/domain/core"
)

// Dataset is the immutable, in-memory launch table.
// The site catalog and payload bounds are computed once in NewDataset.
type Dataset struct {
	id      core.ID
	source  string
	records []LaunchRecord
	sites   []string
	siteSet map[string]struct{}
	bounds  PayloadBounds
}

// NewDataset builds a Dataset from records, re-deriving every outcome from
// its success flag. The records slice is copied.
func NewDataset(source string, records []LaunchRecord) *Dataset {
	owned := make([]LaunchRecord, len(records))
	for i, r := range records {
		owned[i] = NewLaunchRecord(r.Site, r.PayloadMassKg, r.BoosterCategory, r.Success)
	}

	ds := &Dataset{
		id:      core.NewID(),
		source:  source,
		records: owned,
		siteSet: make(map[string]struct{}),
	}

	for _, r := range owned {
		if _, seen := ds.siteSet[r.Site]; seen {
			continue
		}
		ds.siteSet[r.Site] = struct{}{}
		ds.sites = append(ds.sites, r.Site)
	}

	ds.bounds = computeBounds(owned)
	return ds
}

func computeBounds(records []LaunchRecord) PayloadBounds {
	if len(records) == 0 {
		return PayloadBounds{}
	}
	payloads := make(stats.Float64Data, len(records))
	for i, r := range records {
		payloads[i] = r.PayloadMassKg
	}
	// Min and Max only fail on empty input, which is excluded above
	minPayload, _ := payloads.Min()
	maxPayload, _ := payloads.Max()
	return PayloadBounds{Min: minPayload, Max: maxPayload}
}

// ID identifies this loaded copy of the dataset
func (d *Dataset) ID() core.ID {
	return d.id
}

// Source describes where the dataset was loaded from
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of launch records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all launch records in load order
func (d *Dataset) Records() []LaunchRecord {
	out := make([]LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Sites lists AllSites followed by each distinct site in first-occurrence order
func (d *Dataset) Sites() []string {
	out := make([]string, 0, len(d.sites)+1)
	out = append(out, AllSites)
	return append(out, d.sites...)
}

// SiteOptions returns the dropdown entries matching Sites
func (d *Dataset) SiteOptions() []SiteOption {
	opts := make([]SiteOption, 0, len(d.sites)+1)
	opts = append(opts, SiteOption{Label: AllSitesLabel, Value: AllSites})
	for _, site := range d.sites {
		opts = append(opts, SiteOption{Label: site, Value: site})
	}
	return opts
}

// PayloadBounds returns the min and max payload mass over the full dataset.
// Both are zero for an empty dataset.
func (d *Dataset) PayloadBounds() PayloadBounds {
	return d.bounds
}

// HasSite reports whether site is a known launch site. AllSites is not a site.
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.siteSet[site]
	return ok
}

// ValidateSiteFilter accepts AllSites or a known site
func (d *Dataset) ValidateSiteFilter(site string) error {
	if site == AllSites || d.HasSite(site) {
		return nil
	}
	return &UnknownSiteError{Site: site}
}

// SuccessCount counts the successful launches in the dataset
func (d *Dataset) SuccessCount() int {
	n := 0
	for _, r := range d.records {
		if r.Success {
			n++
		}
	}
	return n
}

// SiteCount counts the launches from site
func (d *Dataset) SiteCount(site string) int {
	n := 0
	for _, r := range d.records {
		if r.Site == site {
			n++
		}
	}
	return n
}
