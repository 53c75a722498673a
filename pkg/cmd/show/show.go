package show

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/cmd/util"
	"github.com/Melanie472/f1laps/pkg/dataset"
	"github.com/Melanie472/f1laps/pkg/model"
	"github.com/Melanie472/f1laps/pkg/selection"
	"github.com/Melanie472/f1laps/pkg/ui/console"
)

var outputFormat string

func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "prints the loaded data in the terminal",
	}
	cmd.PersistentFlags().StringVarP(&outputFormat,
		"format",
		"f",
		string(console.FormatTable),
		"output format (table, csv, markdown, yaml)")

	cmd.AddCommand(NewShowSessionsCmd())
	cmd.AddCommand(NewShowDriversCmd())
	cmd.AddCommand(NewShowLapsCmd())

	return cmd
}

func NewShowSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "lists the sessions of the season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ds, err := prepare(cmd.Context())
			if err != nil {
				return err
			}
			return console.WriteSessions(cmd.OutOrStdout(), ds.Sessions, f)
		},
	}
}

func NewShowDriversCmd() *cobra.Command {
	var location string
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "lists the drivers of all or one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ds, err := prepare(cmd.Context())
			if err != nil {
				return err
			}
			drivers := ds.Drivers
			if location != "" {
				session, err := selection.New(ds).ResolveSession(location)
				if err != nil {
					return err
				}
				drivers = lo.Filter(drivers, func(item model.Driver, _ int) bool {
					return item.SessionKey == session.SessionKey
				})
			}
			return console.WriteDrivers(cmd.OutOrStdout(), drivers, f)
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "restrict to the session at this location")
	return cmd
}

// prepare parses the output format and loads the dataset.
func prepare(ctx context.Context) (console.Format, *dataset.Dataset, error) {
	f, err := console.ParseFormat(outputFormat)
	if err != nil {
		return "", nil, err
	}
	ds, err := util.NewLoader().Dataset(ctx)
	if err != nil {
		log.GetFromContext(ctx).Error("could not load data", log.ErrorField(err))
		return "", nil, err
	}
	return f, ds, nil
}

func driverNames(drivers ...model.Driver) map[int]string {
	return lo.SliceToMap(drivers, func(d model.Driver) (int, string) {
		return d.DriverNumber, d.BroadcastName
	})
}

func writeSeparator(w io.Writer, f console.Format) {
	if f == console.FormatYAML {
		fmt.Fprintln(w, "---")
		return
	}
	fmt.Fprintln(w)
}
