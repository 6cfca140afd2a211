package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldbind/pkg/bind"
	"github.com/goliatone/go-fieldbind/pkg/collapse"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/testsupport"
	"github.com/goliatone/go-fieldbind/pkg/ui"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	confirm    []bool
	textAreas  []string
	inputPos   int
	selectPos  int
	confirmPos int
	textPos    int

	messages []string
	defaults []string
	fail     error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	s.defaults = append(s.defaults, cfg.Default)
	if s.fail != nil {
		return "", s.fail
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.fail != nil {
		return false, s.fail
	}
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.fail != nil {
		return -1, s.fail
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.fail != nil {
		return "", s.fail
	}
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func newToolkit(driver PromptDriver, out *bytes.Buffer) *Toolkit {
	return New(
		WithDriver(driver),
		WithOutput(out),
		WithStyles(PlainStyles()),
		WithWidth(10),
	)
}

func control(label string) ui.Control {
	return ui.Control{Path: label, Label: label}
}

func TestToolkit_Widgets(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"bob", "250"},
		confirm:   []bool{true, true},
		selectIdx: []int{2, 7},
		textAreas: []string{"notes"},
	}
	var out bytes.Buffer
	tk := newToolkit(driver, &out)

	if got := tk.TextField(control("Name"), "ada", 0); got != "bob" {
		t.Fatalf("text field = %q", got)
	}
	if got := tk.Slider(control("HP"), 10, 0, 100); got != 100 {
		t.Fatalf("slider = %v, want clamped 100", got)
	}
	if got := tk.Toggle(control("Active"), false); !got {
		t.Fatalf("toggle = false")
	}
	if got := tk.Popup(control("Mode"), 0, []string{"Idle", "Active", "Boost"}); got != 2 {
		t.Fatalf("popup = %d", got)
	}
	if got := tk.ToggleGroup(control("Mode"), 1, []string{"Idle", "Active"}); got != 1 {
		t.Fatalf("out of range selection should keep current, got %d", got)
	}
	if got := tk.TextArea(control("Bio"), ""); got != "notes" {
		t.Fatalf("text area = %q", got)
	}
	if !tk.Button(ui.Control{Path: "Scores.+", Label: "+"}) {
		t.Fatalf("button not pressed")
	}
	if tk.Err() != nil {
		t.Fatalf("unexpected error: %v", tk.Err())
	}

	wantMessages := []string{"Name", "HP [0..100]", "Active", "Mode", "Mode", "Bio", "+ Scores?"}
	if diff := cmp.Diff(wantMessages, driver.messages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ada", "10"}, driver.defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestToolkit_SliderKeepsValueOnBadInput(t *testing.T) {
	driver := &stubDriver{inputs: []string{"lots"}}
	tk := newToolkit(driver, &bytes.Buffer{})
	if got := tk.Slider(control("HP"), 42, 0, 100); got != 42 {
		t.Fatalf("slider = %v, want 42", got)
	}
}

func TestToolkit_AbortStopsPrompting(t *testing.T) {
	driver := &stubDriver{fail: ErrAborted}
	tk := newToolkit(driver, &bytes.Buffer{})

	if got := tk.TextField(control("Name"), "ada", 0); got != "ada" {
		t.Fatalf("aborted field = %q, want current value", got)
	}
	if got := tk.Toggle(control("Active"), true); !got {
		t.Fatalf("toggle after abort should echo value")
	}
	if tk.Button(control("Show")) {
		t.Fatalf("button after abort should not click")
	}
	if len(driver.messages) != 1 {
		t.Fatalf("expected a single prompt, got %v", driver.messages)
	}
	if !errors.Is(tk.Err(), ErrAborted) || !tk.Aborted() {
		t.Fatalf("expected ErrAborted, got %v", tk.Err())
	}

	tk.Reset()
	if tk.Err() != nil {
		t.Fatalf("reset should clear error")
	}
}

func TestToolkit_LayoutOutput(t *testing.T) {
	driver := &stubDriver{inputs: []string{"1", "2"}}
	var out bytes.Buffer
	tk := newToolkit(driver, &out)

	tk.Header("Stats")
	tk.Begin(ui.Vertical, true)
	tk.Label("Pos")
	tk.Begin(ui.Horizontal, false)
	tk.TextField(control("x"), "0", 0)
	tk.TextField(control("y"), "0", 0)
	tk.End()
	tk.End()
	tk.End()
	tk.Space(4)

	want := strings.Join([]string{
		"Stats",
		"──────────",
		"  Pos",
		"──────────",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"  x", "  y"}, driver.messages); diff != "" {
		t.Fatalf("indented prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestToolkit_DrivesBinder(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"bob", "150"},
		confirm: []bool{true},
	}
	tk := newToolkit(driver, &bytes.Buffer{})
	b := bind.New(bind.WithToolkit(tk), bind.WithCollapseStore(collapse.NewSet()))

	p := &testsupport.Player{Name: "ada", HP: 42}
	changed, err := b.BindMasked(p, model.MaskAny, nil)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if !changed {
		t.Fatalf("expected change")
	}
	want := testsupport.Player{Name: "bob", HP: 100, Active: true}
	if diff := cmp.Diff(want, *p); diff != "" {
		t.Fatalf("player mismatch (-want +got):\n%s", diff)
	}
}
