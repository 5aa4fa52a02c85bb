package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledkarlsson/fiftyone/pkg/schema"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <openapi-file> <component>",
		Short: "Derive a sidebar config from an OpenAPI component schema",
		Args:  cobra.ExactArgs(2),
		RunE:  runSchema,
	}
	cmd.Flags().String("format", "yaml", "output format (yaml|toml|json)")
	return cmd
}

func runSchema(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	out := store.Format(strings.ToLower(strings.TrimSpace(format)))

	cfg, err := schema.Load(cmd.Context(), schema.File(args[0]), args[1])
	if err != nil {
		return err
	}
	return store.Encode(cmd.OutOrStdout(), cfg, out)
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <openapi-file>...",
		Short: "Report unsupported x-rangefilter hints",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLint,
	}
}

func runLint(cmd *cobra.Command, args []string) error {
	total := 0
	for _, path := range args {
		data, err := schema.File(path).ReadAll(cmd.Context())
		if err != nil {
			return err
		}
		violations, err := schema.Lint(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("lint %s: %w", path, err)
		}
		for _, v := range violations {
			if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, v); err != nil {
				return err
			}
		}
		total += len(violations)
	}
	if total > 0 {
		return fmt.Errorf("%d unsupported hint(s)", total)
	}
	return nil
}
