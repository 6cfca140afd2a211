package bind_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-fieldbind/pkg/bind"
	"github.com/goliatone/go-fieldbind/pkg/collapse"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/testsupport"
)

func newBinder(tk *testsupport.Toolkit, opts ...bind.Option) *bind.Binder {
	base := []bind.Option{
		bind.WithToolkit(tk),
		bind.WithCollapseStore(collapse.NewSet()),
	}
	return bind.New(append(base, opts...)...)
}

func TestBind_OnChangeOncePerPass(t *testing.T) {
	tk := testsupport.NewToolkit().
		Type("Name", "").
		Type("HP", "150").
		Check("Active", true)
	b := newBinder(tk)
	p := &testsupport.Player{Name: "ada", HP: 42}

	calls := 0
	changed, err := b.BindMasked(p, model.MaskAny, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if !changed || calls != 1 {
		t.Fatalf("changed=%v calls=%d", changed, calls)
	}
	if diff := cmp.Diff(testsupport.Player{HP: 100, Active: true}, *p); diff != "" {
		t.Fatalf("player (-want +got):\n%s", diff)
	}

	changed, err = b.BindMasked(p, model.MaskAny, func() error {
		calls++
		return nil
	})
	if err != nil || changed || calls != 1 {
		t.Fatalf("idle pass: changed=%v calls=%d err=%v", changed, calls, err)
	}
}

func TestBind_CallbackFailuresAreSwallowed(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	cases := []struct {
		name     string
		onChange func() error
	}{
		{"error", func() error { return errors.New("disk full") }},
		{"panic", func() error { panic("boom") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tk := testsupport.NewToolkit().Check("Active", true)
			b := newBinder(tk, bind.WithLogger(logger))

			changed, err := b.BindMasked(&testsupport.Player{}, model.MaskAny, tc.onChange)
			if err != nil {
				t.Fatalf("callback failure leaked: %v", err)
			}
			if !changed {
				t.Fatalf("expected change")
			}
		})
	}

	entries := logs.FilterMessage("onChange failed").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 logged failures, got %d", len(entries))
	}
	if err, ok := entries[1].ContextMap()["error"].(string); !ok || err != "bind: onChange panicked: boom" {
		t.Fatalf("panic not logged as CallbackError: %#v", entries[1].ContextMap())
	}
}

func TestBind_ConfigErrorSkipsCallback(t *testing.T) {
	type bad struct {
		Name string
		X    int `draw:"visibleOn=Nope|1"`
	}
	tk := testsupport.NewToolkit().Type("Name", "x")
	b := newBinder(tk)

	called := false
	_, err := b.BindMasked(&bad{}, model.MaskAny, func() error {
		called = true
		return nil
	})
	if !model.IsConfigError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if called {
		t.Fatalf("onChange must not run for an aborted pass")
	}
}

func TestBind_RejectsNonPointer(t *testing.T) {
	b := newBinder(testsupport.NewToolkit())
	if _, err := b.BindMasked(testsupport.Player{}, model.MaskAny, nil); !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestBindAnnotated(t *testing.T) {
	tk := testsupport.NewToolkit()
	b := newBinder(tk)
	if _, err := b.BindAnnotated(&testsupport.Player{}, nil); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if diff := cmp.Diff([]string{"HP"}, tk.Drawn("textfield")); diff != "" {
		t.Fatalf("drawn (-want +got):\n%s", diff)
	}
	if got := tk.Drawn("toggle"); len(got) != 0 {
		t.Fatalf("undecorated toggle drawn: %v", got)
	}
}

func TestCommit(t *testing.T) {
	tk := testsupport.NewToolkit().Type("HP", "7")
	b := newBinder(tk)
	p := testsupport.Player{Name: "ada", HP: 1}

	calls := 0
	changed, err := bind.Commit(b, &p, model.MaskAny, model.RootIdentity, func() error {
		calls++
		return nil
	})
	if err != nil || !changed || calls != 1 {
		t.Fatalf("changed=%v calls=%d err=%v", changed, calls, err)
	}
	if p.HP != 7 || p.Name != "ada" {
		t.Fatalf("commit mismatch: %+v", p)
	}
}

func TestCommit_ConfigErrorLeavesValue(t *testing.T) {
	type bad struct {
		Name string
		X    int `draw:"visibleOn=Nope|1"`
	}
	tk := testsupport.NewToolkit().Type("Name", "edited")
	v := bad{Name: "original"}

	changed, err := bind.Commit(newBinder(tk), &v, model.MaskAny, model.RootIdentity, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if changed || v.Name != "original" {
		t.Fatalf("caller value touched: changed=%v %+v", changed, v)
	}
}

func TestCommit_Nil(t *testing.T) {
	var p *testsupport.Player
	if _, err := bind.Commit(newBinder(testsupport.NewToolkit()), p, model.MaskAny, model.RootIdentity, nil); !model.IsConfigError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestDrawField(t *testing.T) {
	tk := testsupport.NewToolkit().Slide("HP", 50)
	b := newBinder(tk)
	p := &testsupport.Player{Name: "ada", HP: 1}

	spec := model.NewDrawSpec()
	spec.Kind = model.KindSlider
	spec.Min, spec.Max = 0, 10
	spec.Label = "Health"

	changed, err := b.DrawField(p, "HP", spec)
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if p.HP != 10 {
		t.Fatalf("HP = %d, want clamped 10", p.HP)
	}
	if diff := cmp.Diff([]string{"HP"}, tk.Drawn("slider")); diff != "" {
		t.Fatalf("drawn (-want +got):\n%s", diff)
	}
	if got := tk.Drawn("textfield"); len(got) != 0 {
		t.Fatalf("other fields drawn: %v", got)
	}
}

func TestDrawField_Errors(t *testing.T) {
	b := newBinder(testsupport.NewToolkit())
	p := &testsupport.Player{}

	if _, err := b.DrawField(p, "Mana", model.NewDrawSpec()); !model.IsConfigError(err) {
		t.Fatalf("unknown field: expected configuration error, got %v", err)
	}

	toggle := model.NewDrawSpec()
	toggle.Kind = model.KindToggle
	if _, err := b.DrawField(p, "Name", toggle); !model.IsConfigError(err) {
		t.Fatalf("incompatible kind: expected configuration error, got %v", err)
	}

	ignore := model.NewDrawSpec()
	ignore.Kind = model.KindIgnore
	changed, err := b.DrawField(p, "Name", ignore)
	if err != nil || changed {
		t.Fatalf("ignore: changed=%v err=%v", changed, err)
	}
}

type options struct {
	Volume  float64 `draw:"slider,min=0,max=1"`
	Verbose bool
	saves   int
}

func (o *options) OnChange() error {
	o.saves++
	return nil
}

func TestDraw(t *testing.T) {
	tk := testsupport.NewToolkit().Slide("Volume", 0.5)
	b := newBinder(tk)
	o := &options{}

	changed, err := b.Draw(o)
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if o.Volume != 0.5 || o.saves != 1 {
		t.Fatalf("draw mismatch: %+v", o)
	}
	if got := tk.Drawn("toggle"); len(got) != 0 {
		t.Fatalf("Draw only binds annotated fields, drew %v", got)
	}
}

func TestBind_SeedsCollapseState(t *testing.T) {
	type panel struct {
		Inner testsupport.Player `draw:"collapsible"`
	}
	store := collapse.NewSet()
	tk := testsupport.NewToolkit().Click("Inner")
	b := newBinder(tk, bind.WithCollapseStore(store))

	if _, err := b.Bind(&panel{}, model.MaskOnlyDrawAttr, 1, nil); err != nil {
		t.Fatalf("bind: %v", err)
	}
	tk.Reset()
	if _, err := b.Bind(&panel{}, model.MaskOnlyDrawAttr, 2, nil); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if diff := cmp.Diff([]string{"Show"}, buttonLabels(tk)); diff != "" {
		t.Fatalf("seed 2 must not see seed 1 state (-want +got):\n%s", diff)
	}
	tk.Reset()
	if _, err := b.Bind(&panel{}, model.MaskOnlyDrawAttr, 1, nil); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if diff := cmp.Diff([]string{"Hide"}, buttonLabels(tk)); diff != "" {
		t.Fatalf("seed 1 state (-want +got):\n%s", diff)
	}
}

func buttonLabels(tk *testsupport.Toolkit) []string {
	var out []string
	for _, call := range tk.Calls {
		if call.Op == "button" {
			out = append(out, call.Label)
		}
	}
	return out
}
