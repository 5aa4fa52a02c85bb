// Package testsupport holds fixture helpers shared by package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/store"
)

// LoadConfig reads a sidebar config fixture, inferring the encoding from the
// extension.
func LoadConfig(path string) (store.Config, error) {
	if path == "" {
		return store.Config{}, errors.New("testsupport: config path is required")
	}
	format, err := store.FormatFromPath(path)
	if err != nil {
		return store.Config{}, fmt.Errorf("testsupport: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return store.Config{}, fmt.Errorf("testsupport: open config: %w", err)
	}
	defer f.Close()
	cfg, err := store.Decode(f, format)
	if err != nil {
		return store.Config{}, fmt.Errorf("testsupport: %w", err)
	}
	return cfg, nil
}

// MustLoadConfig is LoadConfig for tests.
func MustLoadConfig(t *testing.T, path string) store.Config {
	t.Helper()
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

// MustLoadStore builds a store from a config fixture.
func MustLoadStore(t *testing.T, path string, options ...store.Option) *store.Store {
	t.Helper()
	s, err := store.FromConfig(MustLoadConfig(t, path), options...)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	return s
}

// NewStore registers specs in a fresh store.
func NewStore(t *testing.T, specs ...store.FieldSpec) *store.Store {
	t.Helper()
	s := store.New()
	for _, spec := range specs {
		if _, err := s.Add(spec); err != nil {
			t.Fatalf("add field %q: %v", spec.Field.Path, err)
		}
	}
	return s
}

// Diff compares values, looking inside the model's optional values.
func Diff(want, got any) string {
	return cmp.Diff(want, got, cmp.AllowUnexported(model.SliderValue{}))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
