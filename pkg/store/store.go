package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ledkarlsson/fiftyone/internal/logging"
	"github.com/ledkarlsson/fiftyone/pkg/model"
)

// FieldState holds the cells of one filterable field.
type FieldState struct {
	field       model.Field
	bounds      *cell[model.Bounds]
	rng         *cell[model.Range]
	scalar      *cell[model.SliderValue]
	noneCount   *cell[int]
	includeNone *cell[bool]
}

// Field returns the field descriptor.
func (f *FieldState) Field() model.Field { return f.field }

// Bounds exposes the field's domain read-only.
func (f *FieldState) Bounds() Source[model.Bounds] { return f.bounds }

// Range is the committed selection for range controls.
func (f *FieldState) Range() Cell[model.Range] { return f.rng }

// Scalar is the committed value for single-value controls.
func (f *FieldState) Scalar() Cell[model.SliderValue] { return f.scalar }

// NoneCount exposes the number of records missing a value, read-only.
func (f *FieldState) NoneCount() Source[int] { return f.noneCount }

// IncludeNone is the include-missing-values toggle.
func (f *FieldState) IncludeNone() Cell[bool] { return f.includeNone }

// FieldSpec seeds a field registered with Store.Add.
type FieldSpec struct {
	Field       model.Field
	Bounds      model.Bounds
	Range       model.Range
	Scalar      model.SliderValue
	NoneCount   int
	IncludeNone bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes store diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeZone sets the zone date-time fields are displayed in.
func WithTimeZone(name string) Option {
	return func(s *Store) {
		s.timeZone = strings.TrimSpace(name)
	}
}

// Store is the shared state the controls are wired to.
type Store struct {
	hub    *hub
	logger logrus.FieldLogger

	mu       sync.RWMutex
	fields   map[string]*FieldState
	order    []string
	timeZone string
}

// New constructs an empty store.
func New(options ...Option) *Store {
	s := &Store{
		hub:    &hub{},
		fields: make(map[string]*FieldState),
		logger: logging.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Add registers a field. Fields keep their registration order.
func (s *Store) Add(spec FieldSpec) (*FieldState, error) {
	if s == nil {
		return nil, fmt.Errorf("store: store is nil")
	}
	path := strings.TrimSpace(spec.Field.Path)
	if path == "" {
		return nil, ErrFieldPathRequired
	}
	if err := spec.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("store: field %q: %w", path, err)
	}
	spec.Field.Path = path

	state := &FieldState{
		field:       spec.Field,
		bounds:      newCell(s.hub, spec.Bounds),
		rng:         newCell(s.hub, spec.Range),
		scalar:      newCell(s.hub, spec.Scalar),
		noneCount:   newCell(s.hub, spec.NoneCount),
		includeNone: newCell(s.hub, spec.IncludeNone),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.fields[path]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateField, path)
	}
	s.fields[path] = state
	s.order = append(s.order, path)
	s.logger.WithFields(logrus.Fields{
		"field":  path,
		"type":   string(spec.Field.Type),
		"bounds": spec.Bounds,
	}).Debug("store: field registered")
	return state, nil
}

// Field returns the state registered under path.
func (s *Store) Field(path string) (*FieldState, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.fields[path]
	return state, ok
}

// Fields lists field descriptors in registration order.
func (s *Store) Fields() []model.Field {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Field, 0, len(s.order))
	for _, path := range s.order {
		out = append(out, s.fields[path].field)
	}
	return out
}

// Batch runs fn and publishes every change it made once fn returns.
func (s *Store) Batch(fn func()) {
	if s == nil || fn == nil {
		return
	}
	s.hub.batch(fn)
}

// TimeZone returns the display zone for date-time fields.
func (s *Store) TimeZone() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeZone
}

// SetTimeZone changes the display zone.
func (s *Store) SetTimeZone(name string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.timeZone = strings.TrimSpace(name)
	s.mu.Unlock()
}

// FieldType returns the field's type tag, unset for unknown fields.
func (s *Store) FieldType(path string) model.FieldType {
	if state, ok := s.Field(path); ok {
		return state.field.Type
	}
	return model.FieldTypeUnset
}

// BoundsOf returns the field's bounds; unknown fields have undetermined bounds.
func (s *Store) BoundsOf(path string) model.Bounds {
	if state, ok := s.Field(path); ok {
		return state.bounds.Get()
	}
	return model.UnknownBounds()
}

// SetBounds replaces the field's domain, e.g. after the underlying data changed.
func (s *Store) SetBounds(path string, bounds model.Bounds) error {
	state, err := s.lookup(path)
	if err != nil {
		return err
	}
	if err := bounds.Validate(); err != nil {
		return fmt.Errorf("store: field %q: %w", path, err)
	}
	state.bounds.Set(bounds)
	return nil
}

// ValueOf returns the committed range selection.
func (s *Store) ValueOf(path string) model.Range {
	if state, ok := s.Field(path); ok {
		return state.rng.Get()
	}
	return model.Range{}
}

// SetValue commits a range selection.
func (s *Store) SetValue(path string, value model.Range) error {
	state, err := s.lookup(path)
	if err != nil {
		return err
	}
	state.rng.Set(value)
	return nil
}

// ScalarOf returns the committed single value.
func (s *Store) ScalarOf(path string) model.SliderValue {
	if state, ok := s.Field(path); ok {
		return state.scalar.Get()
	}
	return model.Unset()
}

// SetScalar commits a single value.
func (s *Store) SetScalar(path string, value model.SliderValue) error {
	state, err := s.lookup(path)
	if err != nil {
		return err
	}
	state.scalar.Set(value)
	return nil
}

// NoneCountOf returns the number of records missing a value for the field.
func (s *Store) NoneCountOf(path string) int {
	if state, ok := s.Field(path); ok {
		return state.noneCount.Get()
	}
	return 0
}

// SetNoneCount updates the missing-value count.
func (s *Store) SetNoneCount(path string, count int) error {
	state, err := s.lookup(path)
	if err != nil {
		return err
	}
	if count < 0 {
		count = 0
	}
	state.noneCount.Set(count)
	return nil
}

// IncludeNoneOf reports whether missing-value records are included. Unknown
// fields include them.
func (s *Store) IncludeNoneOf(path string) bool {
	if state, ok := s.Field(path); ok {
		return state.includeNone.Get()
	}
	return true
}

// SetIncludeNone sets the include-missing toggle.
func (s *Store) SetIncludeNone(path string, include bool) error {
	state, err := s.lookup(path)
	if err != nil {
		return err
	}
	state.includeNone.Set(include)
	return nil
}

func (s *Store) lookup(path string) (*FieldState, error) {
	state, ok := s.Field(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	return state, nil
}

