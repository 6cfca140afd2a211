package overlay_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldbind/pkg/bind"
	"github.com/goliatone/go-fieldbind/pkg/collapse"
	"github.com/goliatone/go-fieldbind/pkg/hostreflect"
	"github.com/goliatone/go-fieldbind/pkg/model"
	"github.com/goliatone/go-fieldbind/pkg/overlay"
	"github.com/goliatone/go-fieldbind/pkg/testsupport"
)

const playerYAML = `
types:
  testsupport.Player:
    drawfields: serialized
    fields:
      HP:
        draw: "kind=slider,min=0,max=50"
        header: "<i>Stats</i>"
        space: 8
      Name:
        label: "<b>Hero</b> &amp; co"
`

const playerJSON = `{
  "types": {
    "testsupport.Texture": {
      "fields": {
        "Path": {"draw": "-"}
      }
    }
  }
}`

func loadFixture(t *testing.T) *overlay.Store {
	t.Helper()
	store, err := overlay.LoadFS(fstest.MapFS{
		"player.yaml":        {Data: []byte(playerYAML)},
		"nested/assets.json": {Data: []byte(playerJSON)},
		"README.md":          {Data: []byte("ignored")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func TestLoadFS(t *testing.T) {
	store := loadFixture(t)
	if store.Empty() {
		t.Fatalf("expected overlays")
	}
	want := []string{"testsupport.Player", "testsupport.Texture"}
	if diff := cmp.Diff(want, store.Types()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	player, ok := store.Type("testsupport.Player")
	if !ok {
		t.Fatalf("player overlay missing")
	}
	if player.Source != "player.yaml" {
		t.Fatalf("source = %q", player.Source)
	}
	policy, ok := player.Annotations.Annotations.Policy()
	if !ok || policy.Mask != model.MaskSerialized {
		t.Fatalf("type policy = %+v, %v", policy, ok)
	}
	if got := player.Fields["Name"].Label; got != "Hero & co" {
		t.Fatalf("sanitised label = %q", got)
	}

	texture, _ := store.Type("testsupport.Texture")
	spec, ok := texture.Fields["Path"].Annotations.DrawSpec()
	if !ok || spec.Kind != model.KindIgnore {
		t.Fatalf("expected ignore spec, got %+v", spec)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "empty file",
			files: fstest.MapFS{"a.yaml": {Data: []byte("  ")}},
			want:  "overlay: file a.yaml is empty",
		},
		{
			name:  "invalid document",
			files: fstest.MapFS{"a.json": {Data: []byte("types: [")}},
			want:  "overlay: parse a.json: invalid JSON or YAML",
		},
		{
			name: "duplicate type",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("types:\n  x.T: {}\n")},
				"b.yaml": {Data: []byte("types:\n  x.T: {}\n")},
			},
			want: `overlay: duplicate type "x.T" (files a.yaml and b.yaml)`,
		},
		{
			name:  "bad draw option",
			files: fstest.MapFS{"a.yaml": {Data: []byte("types:\n  x.T:\n    fields:\n      V:\n        draw: \"speed=3\"\n")}},
			want:  `overlay: a.yaml: fieldbind: x.T.V: unknown draw option "speed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := overlay.LoadFS(tt.files)
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tt.want {
				t.Fatalf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadFS_ConfigErrorsKeepSentinel(t *testing.T) {
	_, err := overlay.LoadFS(fstest.MapFS{
		"a.yaml": {Data: []byte("types:\n  x.T:\n    drawfields: \"everything\"\n")},
	})
	if !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := overlay.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestDecorate_MergesOverDeclared(t *testing.T) {
	store := loadFixture(t)
	host := hostreflect.New(hostreflect.WithDecorator(store))

	desc, err := host.Describe(&testsupport.Player{})
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if policy, ok := desc.Annotations().Policy(); !ok || policy.Mask != model.MaskSerialized {
		t.Fatalf("type policy not applied: %+v", desc.Annotations())
	}

	fields := map[string]model.Annotations{}
	for _, field := range desc.Fields() {
		fields[field.Name()] = field.Annotations()
	}

	hp, _ := fields["HP"].DrawSpec()
	if hp.Kind != model.KindSlider || hp.Max != 50 {
		t.Fatalf("HP spec = %+v", hp)
	}
	if diff := cmp.Diff([]model.Header{{Text: "Stats"}}, fields["HP"].Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.Space{{Height: 8}}, fields["HP"].Spaces()); diff != "" {
		t.Fatalf("spaces mismatch (-want +got):\n%s", diff)
	}

	name, ok := fields["Name"].DrawSpec()
	if !ok || name.Label != "Hero & co" || name.Kind != model.KindAuto {
		t.Fatalf("Name spec = %+v, %v", name, ok)
	}
	if _, ok := fields["Active"].DrawSpec(); ok {
		t.Fatalf("Active should stay undecorated")
	}
}

func TestDecorate_DrivesBinder(t *testing.T) {
	store := loadFixture(t)
	tk := testsupport.NewToolkit().Slide("HP", 80)
	b := bind.New(
		bind.WithToolkit(tk),
		bind.WithHost(hostreflect.New(hostreflect.WithDecorator(store))),
		bind.WithCollapseStore(collapse.NewSet()),
	)

	p := &testsupport.Player{Name: "ada", HP: 10}
	if _, err := b.BindMasked(p, model.MaskAny, nil); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if p.HP != 50 {
		t.Fatalf("HP = %d, want slider clamp to 50", p.HP)
	}

	var ops []string
	for _, call := range tk.Calls {
		ops = append(ops, call.String())
	}
	got := strings.Join(ops, "\n")
	for _, want := range []string{`textfield Name "Hero & co"`, `header "Stats"`, "space 8"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in trace:\n%s", want, got)
		}
	}
}

func TestDecorate_UnknownTypePassesThrough(t *testing.T) {
	var store *overlay.Store
	declared := model.Annotations{model.Horizontal{}}
	if diff := cmp.Diff(declared, store.Decorate("x.T", "", declared)); diff != "" {
		t.Fatalf("annotations changed (-want +got):\n%s", diff)
	}
}
