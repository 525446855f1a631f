package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/UnknownOlympus/meridian/pkg/geo"
	"github.com/spf13/cobra"
)

var errNonFinite = errors.New("result is not finite for the given coordinates")

// newRootCmd builds the command tree. A fresh tree per call keeps flag state out of package globals.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meridianctl",
		Short: "Great-circle midpoints and distances from the command line",
		Long: `meridianctl computes the point halfway along the great circle between two
locations, and the great-circle distance between them.

Points are given as "lng,lat" in decimal degrees, for example:

  meridianctl midpoint --from 30.5234,50.4501 --to 24.0297,49.8397
  meridianctl distance --from 179,0 --to -179,0`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMidpointCmd(), newDistanceCmd())

	return rootCmd
}

type segmentFlags struct {
	from string
	to   string
}

func (f *segmentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.from, "from", "f", "", "first point as lng,lat")
	cmd.Flags().StringVarP(&f.to, "to", "t", "", "second point as lng,lat")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (f *segmentFlags) points() (geo.Point, geo.Point, error) {
	from, err := geo.ParsePoint(f.from)
	if err != nil {
		return geo.Point{}, geo.Point{}, fmt.Errorf("--from: %w", err)
	}
	to, err := geo.ParsePoint(f.to)
	if err != nil {
		return geo.Point{}, geo.Point{}, fmt.Errorf("--to: %w", err)
	}

	return from, to, nil
}

func newMidpointCmd() *cobra.Command {
	var (
		flags  segmentFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "midpoint",
		Short: "Print the great-circle midpoint of two points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := flags.points()
			if err != nil {
				return err
			}

			mid := geo.Midpoint(from, to)
			if !mid.IsFinite() {
				return errNonFinite
			}

			if !asJSON {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), mid.String())
				return err
			}

			feature := geo.Feature(mid)
			feature.SetProperty("distance_meters", geo.Distance(from, to))
			out, err := feature.MarshalJSON()
			if err != nil {
				return fmt.Errorf("failed to encode feature: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "geojson", false, "print the midpoint as a GeoJSON feature")

	return cmd
}

func newDistanceCmd() *cobra.Command {
	var flags segmentFlags

	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the great-circle distance between two points in meters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := flags.points()
			if err != nil {
				return err
			}

			if !from.IsFinite() || !to.IsFinite() {
				return errNonFinite
			}

			meters := geo.Distance(from, to)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(meters, 'f', 3, 64))
			return err
		},
	}

	flags.register(cmd)

	return cmd
}
