package launch

import "fmt"

// ScatterChartTitle returns the scatter chart title for a site filter
func ScatterChartTitle(site string) string {
	if site == AllSites {
		return "Payload Success Rate for All Sites"
	}
	return fmt.Sprintf("Payload Success Rate for site %s", site)
}

// FilterByPayloadAndSite returns the launches whose payload lies in
// [rangeMin, rangeMax] (inclusive) and, unless site is AllSites, that were
// launched from site. Load order is preserved. A range with rangeMin > rangeMax
// matches nothing.
func FilterByPayloadAndSite(ds *Dataset, site string, rangeMin, rangeMax float64) ([]ScatterPoint, error) {
	if err := ds.ValidateSiteFilter(site); err != nil {
		return nil, err
	}

	points := make([]ScatterPoint, 0)
	for _, r := range ds.records {
		if !(r.PayloadMassKg >= rangeMin && r.PayloadMassKg <= rangeMax) {
			continue
		}
		if site != AllSites && r.Site != site {
			continue
		}
		points = append(points, ScatterPoint{
			PayloadMassKg:   r.PayloadMassKg,
			Outcome:         r.Outcome,
			Class:           r.Class(),
			BoosterCategory: r.BoosterCategory,
		})
	}
	return points, nil
}
