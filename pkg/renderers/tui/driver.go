package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes a typed handle value prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
	// Suggestions are offered for tab completion, typically the raw bounds.
	Suggestions []string
	Validator   func(string) error
}

// ConfirmConfig describes the apply-or-revert question after a preview.
type ConfirmConfig struct {
	Message string
	Default bool
}

// SelectConfig describes a menu of controls or actions.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	PageSize     int
}

// PromptDriver is the terminal behind an editing session. Tests script it;
// NewSurveyDriver talks to a real terminal.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	stdio survey.AskOpt
	out   io.Writer
}

// NewSurveyDriver prompts on in and draws prompts and previews on out.
func NewSurveyDriver(in terminal.FileReader, out terminal.FileWriter) PromptDriver {
	return &surveyDriver{
		stdio: survey.WithStdio(in, out, out),
		out:   out,
	}
}

func newSurveyDriver() PromptDriver {
	return NewSurveyDriver(os.Stdin, os.Stdout)
}

// ask runs one prompt, mapping Ctrl+C to ErrAborted.
func (d *surveyDriver) ask(ctx context.Context, prompt survey.Prompt, answer any, extra ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := append([]survey.AskOpt{d.stdio}, extra...)
	if err := survey.AskOne(prompt, answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if len(cfg.Suggestions) > 0 {
		suggestions := append([]string(nil), cfg.Suggestions...)
		prompt.Suggest = func(toComplete string) []string {
			return suggest(suggestions, toComplete)
		}
	}
	var extra []survey.AskOpt
	if validate := cfg.Validator; validate != nil {
		extra = append(extra, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}

	var out string
	if err := d.ask(ctx, prompt, &out, extra...); err != nil {
		return "", err
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var out bool
	err := d.ask(ctx, &survey.Confirm{Message: cfg.Message, Default: cfg.Default}, &out)
	return out, err
}

// Select answers with the chosen index.
func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	var extra []survey.AskOpt
	if cfg.PageSize > 0 {
		extra = append(extra, survey.WithPageSize(cfg.PageSize))
	}

	var idx int
	if err := d.ask(ctx, prompt, &idx, extra...); err != nil {
		return 0, err
	}
	return idx, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// suggest keeps the candidates that extend what has been typed so far.
func suggest(candidates []string, typed string) []string {
	typed = strings.TrimSpace(typed)
	var out []string
	for _, c := range candidates {
		if c != "" && strings.HasPrefix(c, typed) {
			out = append(out, c)
		}
	}
	return out
}
