package launch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/domain/launch"
	"launchdash/internal/testkit"
)

func TestOutcomeFollowsSuccessFlag(t *testing.T) {
	ds := testkit.FleetDataset()
	for i, r := range ds.Records() {
		assert.Equal(t, r.Success, r.Outcome == launch.OutcomeSuccess, "row %d", i)
		assert.Equal(t, r.Class(), r.Outcome.Class(), "row %d", i)
	}
}

func TestNewDatasetRederivesOutcome(t *testing.T) {
	tampered := launch.LaunchRecord{Site: "s", PayloadMassKg: 1, Success: true, Outcome: launch.OutcomeFailure}

	ds := launch.NewDataset("tampered", []launch.LaunchRecord{tampered})

	require.Equal(t, 1, ds.Len())
	assert.Equal(t, launch.OutcomeSuccess, ds.Records()[0].Outcome)
}

func TestDatasetIsIsolatedFromCallers(t *testing.T) {
	records := testkit.ScenarioRecords()
	ds := launch.NewDataset("scenario", records)

	records[0].Site = "mutated"
	out := ds.Records()
	out[1].PayloadMassKg = -1

	assert.Equal(t, testkit.SiteA, ds.Records()[0].Site)
	assert.Equal(t, 2000.0, ds.Records()[1].PayloadMassKg)
	assert.False(t, ds.HasSite("mutated"))
}

func TestSites(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		assert.Equal(t, []string{launch.AllSites, testkit.SiteA, testkit.SiteB}, testkit.ScenarioDataset().Sites())
	})

	t.Run("first occurrence order without duplicates", func(t *testing.T) {
		sites := testkit.FleetDataset().Sites()
		assert.Equal(t, []string{launch.AllSites, "CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, sites)

		seen := make(map[string]bool)
		for _, s := range sites {
			assert.False(t, seen[s], "duplicate site %s", s)
			seen[s] = true
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		assert.Equal(t, []string{launch.AllSites}, launch.NewDataset("empty", nil).Sites())
	})

	t.Run("callers cannot alter the catalog", func(t *testing.T) {
		ds := testkit.ScenarioDataset()
		sites := ds.Sites()
		sites[1] = "changed"
		assert.Equal(t, testkit.SiteA, ds.Sites()[1])
	})
}

func TestSiteOptions(t *testing.T) {
	opts := testkit.ScenarioDataset().SiteOptions()

	require.Len(t, opts, 3)
	assert.Equal(t, launch.SiteOption{Label: "All Sites", Value: launch.AllSites}, opts[0])
	assert.Equal(t, launch.SiteOption{Label: testkit.SiteB, Value: testkit.SiteB}, opts[2])
}

func TestPayloadBounds(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		b := testkit.ScenarioDataset().PayloadBounds()
		assert.Equal(t, 500.0, b.Min)
		assert.Equal(t, 9000.0, b.Max)
	})

	t.Run("bounds are real payloads", func(t *testing.T) {
		ds := testkit.FleetDataset()
		b := ds.PayloadBounds()
		assert.LessOrEqual(t, b.Min, b.Max)

		var minSeen, maxSeen bool
		for _, r := range ds.Records() {
			assert.GreaterOrEqual(t, r.PayloadMassKg, b.Min)
			assert.LessOrEqual(t, r.PayloadMassKg, b.Max)
			minSeen = minSeen || r.PayloadMassKg == b.Min
			maxSeen = maxSeen || r.PayloadMassKg == b.Max
		}
		assert.True(t, minSeen)
		assert.True(t, maxSeen)
	})

	t.Run("empty dataset", func(t *testing.T) {
		assert.Equal(t, launch.PayloadBounds{}, launch.NewDataset("empty", nil).PayloadBounds())
	})
}

func TestValidateSiteFilter(t *testing.T) {
	ds := testkit.ScenarioDataset()

	assert.NoError(t, ds.ValidateSiteFilter(launch.AllSites))
	assert.NoError(t, ds.ValidateSiteFilter(testkit.SiteB))

	err := ds.ValidateSiteFilter("nonexistent")
	require.Error(t, err)
	assert.True(t, launch.IsUnknownSite(err))

	var siteErr *launch.UnknownSiteError
	require.ErrorAs(t, err, &siteErr)
	assert.Equal(t, "nonexistent", siteErr.Site)
}

func TestDatasetIdentity(t *testing.T) {
	a := testkit.ScenarioDataset()
	b := testkit.ScenarioDataset()

	assert.False(t, a.ID().IsEmpty())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "scenario", a.Source())
}
