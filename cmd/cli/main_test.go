package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/domain/launch"
	"launchdash/internal/testkit"
)

func scenarioOptions(t *testing.T) *cliOptions {
	t.Helper()
	path, err := testkit.WriteCSV(t.TempDir(), "launches.csv", testkit.Rows(testkit.ScenarioRecords()))
	require.NoError(t, err)

	opts := &cliOptions{output: formatJSON}
	opts.source.FilePath = path
	return opts
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return &out, cmd.Execute()
}

func TestPayloadCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		payloads []float64
	}{
		{"defaults to dataset bounds", nil, []float64{500, 2000, 7000, 9000}},
		{"site filter", []string{"--site", testkit.SiteA}, []float64{500, 2000}},
		{"min only", []string{"--min", "1000"}, []float64{2000, 7000, 9000}},
		{"max only", []string{"--max", "2000"}, []float64{500, 2000}},
		{"explicit range", []string{"--site", testkit.SiteB, "--min", "0", "--max", "8000"}, []float64{7000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, newPayloadCmd(scenarioOptions(t)), tt.args...)
			require.NoError(t, err)

			var points []launch.ScatterPoint
			require.NoError(t, json.Unmarshal(out.Bytes(), &points), out.String())

			payloads := make([]float64, 0, len(points))
			for _, p := range points {
				payloads = append(payloads, p.PayloadMassKg)
			}
			assert.Equal(t, tt.payloads, payloads)
		})
	}
}

func TestPayloadCmdUnknownSite(t *testing.T) {
	_, err := execute(t, newPayloadCmd(scenarioOptions(t)), "--site", "siteZ")
	assert.ErrorIs(t, err, launch.ErrUnknownSite)
}

func TestOutcomesCmd(t *testing.T) {
	out, err := execute(t, newOutcomesCmd(scenarioOptions(t)), "--site", testkit.SiteA)
	require.NoError(t, err)

	var series launch.ChartSeries
	require.NoError(t, json.Unmarshal(out.Bytes(), &series))
	assert.Equal(t, testkit.SiteA, series.Site)
	assert.Equal(t, 2, series.Total())
}

func TestSitesCmdTable(t *testing.T) {
	opts := scenarioOptions(t)
	opts.output = formatTable

	out, err := execute(t, newSitesCmd(opts))
	require.NoError(t, err)
	assert.Contains(t, out.String(), launch.AllSitesLabel)
	assert.Contains(t, out.String(), testkit.SiteB)
}

func TestCmdMissingFile(t *testing.T) {
	opts := &cliOptions{output: formatJSON}
	opts.source.FilePath = "/nonexistent/launches.csv"

	_, err := execute(t, newBoundsCmd(opts))
	assert.ErrorIs(t, err, launch.ErrLoad)
}
