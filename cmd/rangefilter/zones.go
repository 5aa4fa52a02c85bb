package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/ledkarlsson/fiftyone/components/timezones"
)

func newZonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones [query]",
		Short: "List time zones usable with --tz",
		Long:  `zones searches the built-in zone catalog. Each line shows the zone name, its current abbreviation and its UTC offset.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runZones,
	}
	cmd.Flags().Int("limit", 20, "maximum number of zones to print")
	return cmd
}

func runZones(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	catalog, err := timezones.NewCatalog()
	if err != nil {
		return err
	}
	zones := catalog.Search(query, limit)

	nameWidth := 0
	for _, zone := range zones {
		nameWidth = max(nameWidth, runewidth.StringWidth(zone.Name))
	}
	for _, zone := range zones {
		line := fmt.Sprintf("%s  %-6s %s", runewidth.FillRight(zone.Name, nameWidth), zone.Abbreviation, zone.UTCOffset())
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}
	return nil
}
