package show

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/chart"
	"github.com/Melanie472/f1laps/pkg/cmd/util"
	"github.com/Melanie472/f1laps/pkg/dashboard"
	"github.com/Melanie472/f1laps/pkg/ui/console"
)

type lapsConfig struct {
	location      string
	driver        string
	from          int
	to            int
	zoom          bool
	compareDriver string
	chartOut      string
}

func NewShowLapsCmd() *cobra.Command {
	cfg := lapsConfig{}
	cmd := &cobra.Command{
		Use:   "laps",
		Short: "shows the lap times and fastest lap of a driver",
		Long: `Runs the dashboard in the terminal. The widget values are taken from the flags,
unset values default to the first location/driver and the full lap range.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showLaps(cmd, &cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.location, "location", "", "location of the race")
	cmd.Flags().StringVar(&cfg.driver, "driver", "", "display name of the driver")
	cmd.Flags().IntVar(&cfg.from, "from", 0, "first lap to show (0 = first lap)")
	cmd.Flags().IntVar(&cfg.to, "to", 0, "last lap to show (0 = last lap)")
	cmd.Flags().BoolVar(&cfg.zoom, "zoom", false, "zoom the chart around the fastest lap")
	cmd.Flags().StringVar(&cfg.compareDriver, "compare-driver", "",
		"display name of a second driver to compare with")
	cmd.Flags().StringVarP(&cfg.chartOut, "chart-out", "o", "",
		"write the chart to this file (.png or .svg)")
	return cmd
}

func showLaps(cmd *cobra.Command, cfg *lapsConfig) error {
	ctx := cmd.Context()
	logger := log.GetFromContext(ctx).Named("show")
	f, err := console.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	var chartFormat chart.Format
	if cfg.chartOut != "" {
		if chartFormat, err = chart.ParseFormat(
			strings.TrimPrefix(filepath.Ext(cfg.chartOut), ".")); err != nil {
			return err
		}
	}

	// keep machine readable output clean
	out := cmd.OutOrStdout()
	surfaceOut := out
	if f != console.FormatTable {
		surfaceOut = cmd.ErrOrStderr()
	}
	surface := console.NewSurface(surfaceOut,
		console.WithQuiet(f != console.FormatTable),
		console.WithSelect(dashboard.KeyLocation, cfg.location),
		console.WithSelect(dashboard.KeyDriver, cfg.driver),
		console.WithSelect(dashboard.KeyCompareDriver, cfg.compareDriver),
		console.WithRange(dashboard.KeyLaps, cfg.from, cfg.to),
		console.WithCheck(dashboard.KeyZoom, cfg.zoom),
		console.WithCheck(dashboard.KeyCompare, cfg.compareDriver != ""),
	)
	state, err := dashboard.New(util.NewLoader()).Render(ctx, surface)
	if err != nil {
		return err
	}
	if state.NoData != nil {
		return nil
	}

	if err := console.WriteLaps(out, state.Series, driverNames(state.Driver), f); err != nil {
		return err
	}
	if state.Compare {
		writeSeparator(out, f)
		if err := console.WriteLaps(out, state.CompareSeries,
			driverNames(state.CompareDriver), f); err != nil {
			return err
		}
	}

	if spec := surface.ChartSpec(); spec != nil && cfg.chartOut != "" {
		if err := writeChart(cfg.chartOut, spec, chartFormat); err != nil {
			return err
		}
		logger.Info("chart written", log.String("file", cfg.chartOut))
	}
	return nil
}

func writeChart(name string, spec *chart.Spec, format chart.Format) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := chart.Render(file, spec, format); err != nil {
		file.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return file.Close()
}
