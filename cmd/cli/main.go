package main

import (
	"context"
	"fmt"
	"os"

	"launchdash/app"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/dataset"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// cliOptions are the flags shared by every command
type cliOptions struct {
	source dataset.Source
	output string
}

func main() {
	_ = godotenv.Load()

	opts := &cliOptions{}
	rootCmd := &cobra.Command{
		Use:           "launchdash-cli",
		Short:         "Query SpaceX launch records from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.source.FilePath, "file", envOr("DATA_FILE", "data/spacex_launch_dash.csv"), "CSV or XLSX launch records file")
	flags.StringVar(&opts.source.Sheet, "sheet", os.Getenv("DATA_SHEET"), "worksheet name for XLSX files (default: first sheet)")
	flags.StringVar(&opts.source.DatabaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres URL; takes precedence over --file")
	flags.StringVar(&opts.source.Table, "table", os.Getenv("DATA_TABLE"), "Postgres table holding launch records")
	flags.StringVarP(&opts.output, "output", "o", "table", "output format: table or json")

	rootCmd.AddCommand(
		newSitesCmd(opts),
		newBoundsCmd(opts),
		newOutcomesCmd(opts),
		newPayloadCmd(opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// load reads the configured source into a dashboard service
func (o *cliOptions) load(ctx context.Context) (*app.DashboardService, error) {
	logger := internal.NewLogger(internal.ParseLogLevel(envOr("LOG_LEVEL", "WARN")))
	ds, err := dataset.NewLoader(logger).Load(ctx, o.source)
	if err != nil {
		return nil, err
	}
	return app.NewDashboardService(ds, app.DefaultSliderSettings(), logger), nil
}

func newSitesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List the launch site filter options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			return renderSites(cmd.OutOrStdout(), opts.output, svc.GetSiteOptions())
		},
	}
}

func newBoundsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Show the payload mass range and slider configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			return renderSlider(cmd.OutOrStdout(), opts.output, svc.GetSliderConfig())
		},
	}
}

func newOutcomesCmd(opts *cliOptions) *cobra.Command {
	var site string

	cmd := &cobra.Command{
		Use:   "outcomes",
		Short: "Count launch outcomes for a site, or successes per site",
		Long: `Count launch outcomes.

With --site ALL (the default) prints successful launches per site; with a
concrete site prints its Success and Failure counts.

Example: launchdash-cli outcomes --site "KSC LC-39A"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			series, err := svc.GetOutcomeChartData(site)
			if err != nil {
				return err
			}
			return renderSeries(cmd.OutOrStdout(), opts.output, series)
		},
	}

	cmd.Flags().StringVar(&site, "site", launch.AllSites, "launch site or ALL")
	return cmd
}

func newPayloadCmd(opts *cliOptions) *cobra.Command {
	var (
		site     string
		rangeMin float64
		rangeMax float64
	)

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "List launches whose payload mass lies in a range",
		Long: `List launches whose payload mass lies in [--min, --max] (inclusive).

Without --min/--max the full payload range of the dataset is used.

Example: launchdash-cli payload --site "CCAFS LC-40" --min 2000 --max 6000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			lo, hi := svc.GetPayloadBounds()
			if cmd.Flags().Changed("min") {
				lo = rangeMin
			}
			if cmd.Flags().Changed("max") {
				hi = rangeMax
			}
			points, err := svc.GetPayloadChartData(site, lo, hi)
			if err != nil {
				return err
			}
			return renderPoints(cmd.OutOrStdout(), opts.output, launch.ScatterChartTitle(site), points)
		},
	}

	cmd.Flags().StringVar(&site, "site", launch.AllSites, "launch site or ALL")
	cmd.Flags().Float64Var(&rangeMin, "min", 0, "lower payload bound in kg")
	cmd.Flags().Float64Var(&rangeMax, "max", 0, "upper payload bound in kg")
	return cmd
}
