package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ledkarlsson/fiftyone"
	"github.com/ledkarlsson/fiftyone/internal/logging"
	"github.com/ledkarlsson/fiftyone/pkg/render"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/live"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/text"
	"github.com/ledkarlsson/fiftyone/pkg/renderers/tui"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rangefilter",
		Short:        "Inspect and edit range filter sidebars",
		Long:         `rangefilter draws the range filter controls described by a sidebar config and lets you edit them from a terminal.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "sidebar.yaml", "sidebar config file (yaml|toml|json)")
	root.PersistentFlags().String("tz", "", "display time zone, overrides the config")
	root.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-format", "text", "log format (text|json)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newShowCmd())
	root.AddCommand(newPromptCmd())
	root.AddCommand(newLiveCmd())
	root.AddCommand(newZonesCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newLintCmd())
	return root
}

func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	level, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	format, err := cmd.Root().PersistentFlags().GetString("log-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-format flag: %w", err)
	}
	return logging.New(cmd.ErrOrStderr(), level, format)
}

// openSidebar loads the --config file, applies --tz and builds the controls.
func openSidebar(cmd *cobra.Command, logger logrus.FieldLogger) (*fiftyone.Sidebar, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	tz, err := cmd.Root().PersistentFlags().GetString("tz")
	if err != nil {
		return nil, fmt.Errorf("failed to get tz flag: %w", err)
	}

	var storeOptions []store.Option
	storeOptions = append(storeOptions, store.WithLogger(logger))
	if strings.TrimSpace(tz) != "" {
		storeOptions = append(storeOptions, store.WithTimeZone(tz))
	}
	st, err := store.Load(path, storeOptions...)
	if err != nil {
		return nil, err
	}

	return fiftyone.New(st,
		fiftyone.WithLogger(logger),
		fiftyone.WithRegistry(newRegistry(cmd, logger)),
	)
}

func newRegistry(cmd *cobra.Command, logger logrus.FieldLogger) *render.Registry {
	registry := render.NewRegistry()
	registry.MustAdd(text.New())
	registry.MustRegister("tui", func() (render.Renderer, error) {
		return tui.New(
			tui.WithLogger(logger),
			tui.WithPromptDriver(tui.NewSurveyDriver(os.Stdin, os.Stderr)),
		), nil
	})
	registry.MustRegister("live", func() (render.Renderer, error) {
		return live.New(
			live.WithInput(cmd.InOrStdin()),
			live.WithOutput(cmd.ErrOrStderr()),
			live.WithAltScreen(true),
		), nil
	})
	return registry
}

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(cmd *cobra.Command) (colorMode, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func noColor(mode colorMode) bool {
	switch mode {
	case colorOn:
		return false
	case colorOff:
		return true
	default:
		return !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
