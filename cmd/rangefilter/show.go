package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledkarlsson/fiftyone/pkg/render"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the sidebar's controls",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Int("width", render.DefaultWidth, "track width in cells")
	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	opts := render.RenderOptions{Width: width}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		opts.Format = render.FormatText
	case "json":
		opts.Format = render.FormatJSON
	default:
		return fmt.Errorf("unknown format %q (expected text|json)", format)
	}
	mode, err := readColorMode(cmd)
	if err != nil {
		return err
	}
	opts.NoColor = noColor(mode)

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	sb, err := openSidebar(cmd, logger)
	if err != nil {
		return err
	}
	defer sb.Close()

	out, err := sb.Render(cmd.Context(), "text", opts)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
