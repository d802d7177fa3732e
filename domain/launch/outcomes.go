package launch

import "fmt"

// Pie colours used by the dashboard
var (
	siteColors    = []string{"gold", "lightblue", "tomato", "lightgreen"}
	outcomeColors = map[Outcome]string{
		OutcomeSuccess: "lightblue",
		OutcomeFailure: "tomato",
	}
)

// OutcomeChartTitle returns the pie chart title for a site filter
func OutcomeChartTitle(site string) string {
	if site == AllSites {
		return "Total Successful Launches by Site"
	}
	return fmt.Sprintf("Launch Success vs Failure for site %s", site)
}

// AggregateOutcomes derives the pie chart series for a site filter.
//
// With AllSites it counts successful launches per site, in first-occurrence
// order of the sites. With a specific site it counts that site's launches per
// outcome, Success before Failure. Groups with no launches are omitted.
func AggregateOutcomes(ds *Dataset, site string) (ChartSeries, error) {
	if err := ds.ValidateSiteFilter(site); err != nil {
		return ChartSeries{}, err
	}

	series := ChartSeries{
		Title: OutcomeChartTitle(site),
		Site:  site,
	}
	if site == AllSites {
		series.Points = successesBySite(ds)
	} else {
		series.Points = outcomesForSite(ds, site)
	}
	return series, nil
}

func successesBySite(ds *Dataset) []ChartPoint {
	counts := make(map[string]int, len(ds.sites))
	for _, r := range ds.records {
		if r.Success {
			counts[r.Site]++
		}
	}

	points := make([]ChartPoint, 0, len(ds.sites))
	for _, site := range ds.sites {
		n := counts[site]
		if n == 0 {
			continue
		}
		points = append(points, ChartPoint{
			Label: site,
			Count: n,
			Color: siteColors[len(points)%len(siteColors)],
		})
	}
	return points
}

func outcomesForSite(ds *Dataset, site string) []ChartPoint {
	var successes, failures int
	for _, r := range ds.records {
		if r.Site != site {
			continue
		}
		if r.Success {
			successes++
		} else {
			failures++
		}
	}

	points := make([]ChartPoint, 0, 2)
	for _, group := range []struct {
		outcome Outcome
		count   int
	}{
		{OutcomeSuccess, successes},
		{OutcomeFailure, failures},
	} {
		if group.count == 0 {
			continue
		}
		points = append(points, ChartPoint{
			Label: group.outcome.String(),
			Count: group.count,
			Color: outcomeColors[group.outcome],
		})
	}
	return points
}
