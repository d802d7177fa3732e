package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/domain/launch"
	"launchdash/internal/testkit"
)

func TestRenderSeries_Table(t *testing.T) {
	series, err := launch.AggregateOutcomes(testkit.ScenarioDataset(), launch.AllSites)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderSeries(&buf, formatTable, series))

	out := buf.String()
	assert.Contains(t, out, "Total Successful Launches by Site")
	assert.Contains(t, out, testkit.SiteA)
	assert.Contains(t, out, testkit.SiteB)
}

func TestRenderSeries_JSON(t *testing.T) {
	series, err := launch.AggregateOutcomes(testkit.ScenarioDataset(), testkit.SiteA)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderSeries(&buf, formatJSON, series))

	var decoded launch.ChartSeries
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, series, decoded)
}

func TestRenderPoints(t *testing.T) {
	points, err := launch.FilterByPayloadAndSite(testkit.ScenarioDataset(), launch.AllSites, 0, 2000)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderPoints(&buf, formatTable, "payload", points))
	assert.Contains(t, buf.String(), "(2 launches)")

	buf.Reset()
	require.NoError(t, renderPoints(&buf, formatTable, "payload", nil))
	assert.Equal(t, "(0 launches)\n", buf.String())
}

func TestRenderSlider(t *testing.T) {
	slider := launch.NewSliderConfig(testkit.ScenarioDataset(), 0, 10000, 1000)

	var buf bytes.Buffer
	require.NoError(t, renderSlider(&buf, formatTable, slider))
	assert.Contains(t, buf.String(), "9000")
	assert.Contains(t, buf.String(), "0 - 10000")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := renderSites(&buf, "yaml", testkit.ScenarioDataset().SiteOptions())
	assert.ErrorContains(t, err, "unknown output format")
	assert.Empty(t, buf.String())
}
