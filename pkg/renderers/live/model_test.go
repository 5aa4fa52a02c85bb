package live

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledkarlsson/fiftyone/pkg/model"
	"github.com/ledkarlsson/fiftyone/pkg/render"
	"github.com/ledkarlsson/fiftyone/pkg/slider"
	"github.com/ledkarlsson/fiftyone/pkg/store"
	"github.com/ledkarlsson/fiftyone/pkg/testsupport"
)

func buildControls(t *testing.T) (*store.Store, []*render.Control) {
	t.Helper()
	specs := []store.FieldSpec{
		{
			Field:       model.Field{Path: "width", Name: "Width", Type: model.FieldTypeInteger},
			Bounds:      model.NewBounds(0, 1000),
			Range:       model.NewRange(0, 1000),
			NoneCount:   2,
			IncludeNone: true,
		},
		{Field: model.Field{Path: "pending", Type: model.FieldTypeInteger}},
		{
			Field:  model.Field{Path: "confidence", Type: model.FieldTypeFloat, Scalar: true},
			Bounds: model.NewBounds(0, 1),
			Scalar: model.Value(0.5),
		},
	}
	s := testsupport.NewStore(t, specs...)
	width, err := slider.NewNamedFromStore(s, "width")
	if err != nil {
		t.Fatalf("named: %v", err)
	}
	pending, err := slider.NewNamedFromStore(s, "pending")
	if err != nil {
		t.Fatalf("named: %v", err)
	}
	confidence, err := slider.NewSliderFromStore(s, "confidence")
	if err != nil {
		t.Fatalf("slider: %v", err)
	}
	controls := []*render.Control{
		render.NewNamedControl(specs[0].Field, width),
		render.NewNamedControl(specs[1].Field, pending),
		render.NewSliderControl(specs[2].Field, confidence),
	}
	t.Cleanup(func() {
		for _, c := range controls {
			c.Close()
		}
	})
	return s, controls
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_DragAndCommit(t *testing.T) {
	s, controls := buildControls(t)
	m := NewModel(controls, render.RenderOptions{Width: 21, NoColor: true})

	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyShiftRight})
	if got := s.ValueOf("width"); got != model.NewRange(0, 1000) {
		t.Fatalf("arrow keys must not commit, got %v", got)
	}
	if got := m.Focused().State(); got != slider.StateDragging {
		t.Fatalf("expected dragging, got %v", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyLeft}, runes("H"))
	if m.Handle() != 1 {
		t.Fatalf("tab should select the upper handle")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := s.ValueOf("width"); got != model.NewRange(110, 890) {
		t.Fatalf("committed: got %v", got)
	}
	if got := m.Focused().State(); got != slider.StateSynced {
		t.Fatalf("expected synced after commit, got %v", got)
	}

	press(m, runes("r"))
	if got := s.ValueOf("width"); got != model.NewRange(0, 1000) {
		t.Fatalf("reset: got %v", got)
	}
	press(m, runes("n"))
	if s.IncludeNoneOf("width") {
		t.Fatalf("n should exclude missing values")
	}
}

func TestModel_FocusSkipsHiddenAndReverts(t *testing.T) {
	s, controls := buildControls(t)
	m := NewModel(controls, render.RenderOptions{NoColor: true})

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Focused().Field().Path; got != "confidence" {
		t.Fatalf("focus should skip the hidden control, got %q", got)
	}
	if got := controls[0].View().Handles[0].Value; got != model.Value(0) {
		t.Fatalf("leaving a control should drop its draft, got %v", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Focused().Field().Path; got != "confidence" {
		t.Fatalf("focus should stop at the last control, got %q", got)
	}

	press(m, runes("l"), tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.Focused().View().Handles[0].Value; got != model.Value(0.5) {
		t.Fatalf("esc should revert the draft, got %v", got)
	}
	press(m, runes("l"), runes(" "))
	if got := s.ScalarOf("confidence"); got != model.Value(0.51) {
		t.Fatalf("space should commit, got %v", got)
	}
}

func TestModel_QuitRevertsDrafts(t *testing.T) {
	s, controls := buildControls(t)
	m := NewModel(controls, render.RenderOptions{NoColor: true})

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if got := controls[0].View().Handles[0].Value; got != model.Value(0) {
		t.Fatalf("quit should drop drafts, got %v", got)
	}
	if got := s.ValueOf("width"); got != model.NewRange(0, 1000) {
		t.Fatalf("quit must not commit, got %v", got)
	}
	if m.View() != "" {
		t.Fatalf("view should be empty after quitting")
	}
}

func TestModel_View(t *testing.T) {
	_, controls := buildControls(t)
	m := NewModel(controls, render.RenderOptions{NoColor: true})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	view := m.View()
	if !strings.Contains(view, "> Width") {
		t.Fatalf("expected focused header, got:\n%s", view)
	}
	if strings.Contains(view, "pending") {
		t.Fatalf("hidden control rendered:\n%s", view)
	}
	if !strings.Contains(view, "apply") {
		t.Fatalf("expected help line, got:\n%s", view)
	}

	empty := NewModel(nil, render.RenderOptions{})
	if empty.View() != "No filters to show.\n" || press(empty, tea.KeyMsg{Type: tea.KeyRight}) != nil {
		t.Fatalf("empty model misbehaves")
	}
}

func TestRenderer_Run(t *testing.T) {
	s, controls := buildControls(t)
	var out bytes.Buffer
	r := New(WithInput(strings.NewReader("lq")), WithOutput(&out))

	data, err := r.Render(context.Background(), controls, render.RenderOptions{NoColor: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(data), `"path": "width"`) {
		t.Fatalf("expected summary output, got %s", data)
	}
	if got := s.ValueOf("width"); got != model.NewRange(0, 1000) {
		t.Fatalf("uncommitted drag leaked: %v", got)
	}
}
