package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledkarlsson/fiftyone/pkg/render"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/tui"
)

// interactive reports whether the live session has a keyboard and a screen.
var interactive = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Edit the sidebar with interactive prompts",
		Long:  `prompt walks through the controls with question prompts and prints the committed state as JSON.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, "tui")
		},
	}
}

func newLiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Edit the sidebar with the keyboard",
		Long:  `live draws every control full screen on stderr and moves handles with the arrow keys. The committed state is printed to stdout as JSON on exit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !interactive() {
				return errors.New("live needs an interactive terminal; use show or prompt instead")
			}
			return runSession(cmd, "live")
		},
	}
}

func runSession(cmd *cobra.Command, renderer string) error {
	mode, err := readColorMode(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	sb, err := openSidebar(cmd, logger)
	if err != nil {
		return err
	}
	defer sb.Close()

	out, err := sb.Render(cmd.Context(), renderer, render.RenderOptions{NoColor: noColor(mode)})
	if errors.Is(err, tui.ErrAborted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", renderer, err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
