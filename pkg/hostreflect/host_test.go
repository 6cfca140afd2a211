package hostreflect_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldbind/pkg/hostreflect"
	"github.com/goliatone/go-fieldbind/pkg/model"
)

type mode uint8

const (
	modeIdle mode = iota
	modeActive
)

func (mode) EnumMembers() []model.EnumMember {
	return []model.EnumMember{{Name: "Idle", Value: 0}, {Name: "Active", Value: 1}}
}

type perms int

func (perms) EnumMembers() []model.EnumMember {
	return []model.EnumMember{{Name: "Read", Value: 1}, {Name: "Write", Value: 2}}
}

func (perms) EnumFlags() bool { return true }

type handle struct{ id string }

func (h *handle) OpaqueName() string { return "handle:" + h.id }

type audio struct {
	Volume float32 `range:"0,1"`
	Muted  bool
}

type node struct {
	Name string
	Next *node
}

type settings struct {
	Name    string        `json:"name" draw:"label=Player name,maxlen=16"`
	HP      int32         `range:"0,100" header:"Stats" space:"8"`
	Speed   float64       `draw:"slider,min=0,max=2,precision=1,visibleOn=Mode|Active"`
	Mode    mode          `yaml:"mode"`
	Perms   perms         `json:"-"`
	Pos     model.Vector3 `horizontal:""`
	Tint    model.Color
	Scores  []int
	Audio   audio `draw:"collapsible,box" drawfields:"public|serialized"`
	Link    *node
	Asset   handle
	Secret  string `draw:"-"`
	Big     uint64
	private int
}

func (*settings) DrawFields() model.FieldMask { return model.MaskSkipNotSerialized }

func describe(t *testing.T, h *hostreflect.Host, v any) model.TypeDescriptor {
	t.Helper()
	desc, err := h.Describe(v)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	return desc
}

func field(t *testing.T, desc model.TypeDescriptor, name string) model.FieldDescriptor {
	t.Helper()
	for _, f := range desc.Fields() {
		if f.Name() == name {
			return f
		}
	}
	t.Fatalf("field %s not found", name)
	return nil
}

func TestDescribe_TypeNames(t *testing.T) {
	h := hostreflect.New()

	desc := describe(t, h, &audio{})
	if desc.Name() != "hostreflect_test.audio" {
		t.Fatalf("Name = %q", desc.Name())
	}
	if got, want := model.TypeKey(desc), "github.com/goliatone/go-fieldbind/pkg/hostreflect_test.audio"; got != want {
		t.Fatalf("TypeKey = %q, want %q", got, want)
	}

	anon := describe(t, h, &struct{ X int }{})
	if model.TypeKey(anon) != anon.Name() {
		t.Fatalf("anonymous TypeKey = %q, Name = %q", model.TypeKey(anon), anon.Name())
	}
}

func TestDescribe_FieldOrderAndKinds(t *testing.T) {
	desc := describe(t, hostreflect.New(), &settings{})

	var names []string
	kinds := map[string]model.TypeKind{}
	for _, f := range desc.Fields() {
		names = append(names, f.Name())
		kinds[f.Name()] = f.Type().Kind
	}
	wantNames := []string{"Name", "HP", "Speed", "Mode", "Perms", "Pos", "Tint", "Scores", "Audio", "Link", "Asset", "Secret", "Big"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	wantKinds := map[string]model.TypeKind{
		"Name":   model.TypeString,
		"HP":     model.TypeInt,
		"Speed":  model.TypeDouble,
		"Mode":   model.TypeEnum,
		"Perms":  model.TypeEnum,
		"Pos":    model.TypeVector3,
		"Tint":   model.TypeColor,
		"Scores": model.TypeArray,
		"Audio":  model.TypeComposite,
		"Link":   model.TypeComposite,
		"Asset":  model.TypeOpaque,
		"Secret": model.TypeString,
		"Big":    model.TypeLong,
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("kind mismatch (-want +got):\n%s", diff)
	}

	if !field(t, desc, "Perms").Type().Flags {
		t.Fatalf("expected perms to be a flags enum")
	}
	if field(t, desc, "Mode").Type().Flags {
		t.Fatalf("mode must not be a flags enum")
	}
	if elem := field(t, desc, "Scores").Type().Elem; elem == nil || elem.Kind != model.TypeLong {
		t.Fatalf("scores element type: %#v", elem)
	}
}

func TestDescribe_Annotations(t *testing.T) {
	desc := describe(t, hostreflect.New(), &settings{})

	policy, ok := desc.Annotations().Policy()
	if !ok || policy.Mask != model.MaskSkipNotSerialized {
		t.Fatalf("type policy: %#v %v", policy, ok)
	}

	spec, ok := field(t, desc, "Name").Annotations().DrawSpec()
	if !ok {
		t.Fatalf("expected draw spec on Name")
	}
	if spec.Label != "Player name" || spec.MaxLength != 16 || spec.Kind != model.KindAuto {
		t.Fatalf("name spec mismatch: %#v", spec)
	}

	speed, _ := field(t, desc, "Speed").Annotations().DrawSpec()
	if speed.Kind != model.KindSlider || speed.Min != 0 || speed.Max != 2 || speed.Precision != 1 {
		t.Fatalf("speed spec mismatch: %#v", speed)
	}
	if speed.VisibleOn != "Mode|Active" {
		t.Fatalf("visibleOn mismatch: %q", speed.VisibleOn)
	}

	hp := field(t, desc, "HP").Annotations()
	if r, ok := hp.Range(); !ok || r.Min != 0 || r.Max != 100 {
		t.Fatalf("range mismatch: %#v", r)
	}
	if diff := cmp.Diff([]model.Header{{Text: "Stats"}}, hp.Headers()); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.Space{{Height: 8}}, hp.Spaces()); diff != "" {
		t.Fatalf("spaces mismatch (-want +got):\n%s", diff)
	}

	audio := field(t, desc, "Audio").Annotations()
	audioSpec, _ := audio.DrawSpec()
	if !audioSpec.Collapsible || !audioSpec.Box {
		t.Fatalf("audio spec mismatch: %#v", audioSpec)
	}
	if p, ok := audio.Policy(); !ok || p.Mask != model.MaskPublic|model.MaskSerialized {
		t.Fatalf("audio policy mismatch: %#v", p)
	}

	if !field(t, desc, "Pos").Annotations().Horizontal() {
		t.Fatalf("expected horizontal on Pos")
	}
	if secret, _ := field(t, desc, "Secret").Annotations().DrawSpec(); secret.Kind != model.KindIgnore {
		t.Fatalf("expected Secret to be ignored, got %v", secret.Kind)
	}
}

func TestDescribe_SerializationMarkers(t *testing.T) {
	desc := describe(t, hostreflect.New(), &settings{})

	cases := []struct {
		name          string
		serialized    bool
		notSerialized bool
	}{
		{"Name", true, false},
		{"Mode", true, false},
		{"Perms", false, true},
		{"HP", false, false},
	}
	for _, tc := range cases {
		f := field(t, desc, tc.name)
		if f.Serialized() != tc.serialized || f.NotSerialized() != tc.notSerialized {
			t.Fatalf("%s: serialized=%v notSerialized=%v", tc.name, f.Serialized(), f.NotSerialized())
		}
		if !f.Exported() {
			t.Fatalf("%s: expected exported", tc.name)
		}
	}
}

func TestField_GetSetNormalised(t *testing.T) {
	s := &settings{Name: "ada", HP: 42, Speed: 1.5, Mode: modeActive, Scores: []int{1, 2}, Big: 7}
	desc := describe(t, hostreflect.New(), s)

	checks := map[string]any{
		"Name":   "ada",
		"HP":     int64(42),
		"Speed":  1.5,
		"Mode":   int64(1),
		"Scores": []any{int64(1), int64(2)},
		"Big":    uint64(7),
		"Pos":    model.Vector3{},
	}
	for name, want := range checks {
		if diff := cmp.Diff(want, field(t, desc, name).Get(s)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	field(t, desc, "HP").Set(s, int64(100))
	field(t, desc, "Mode").Set(s, int64(0))
	field(t, desc, "Scores").Set(s, []any{int64(1), int64(2), int64(0)})
	field(t, desc, "Big").Set(s, uint64(9))
	field(t, desc, "Pos").Set(s, model.Vector3{X: 1, Y: 2, Z: 3})
	field(t, desc, "Name").Set(s, 12) // wrong shape, ignored

	if s.HP != 100 || s.Mode != modeIdle || s.Big != 9 || s.Name != "ada" {
		t.Fatalf("unexpected values after set: %+v", s)
	}
	if diff := cmp.Diff([]int{1, 2, 0}, s.Scores); diff != "" {
		t.Fatalf("scores mismatch (-want +got):\n%s", diff)
	}
	if s.Pos != (model.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("pos mismatch: %+v", s.Pos)
	}
}

func TestField_CompositeIsAddressable(t *testing.T) {
	s := &settings{}
	h := hostreflect.New()
	desc := describe(t, h, s)

	audioField := field(t, desc, "Audio")
	nested, ok := audioField.Get(s).(*audio)
	if !ok {
		t.Fatalf("expected *audio, got %T", audioField.Get(s))
	}
	nested.Muted = true
	audioField.Set(s, nested)
	if !s.Audio.Muted {
		t.Fatalf("nested edit did not land in container")
	}

	nestedDesc, err := audioField.Type().Describe()
	if err != nil {
		t.Fatalf("describe nested: %v", err)
	}
	if got := field(t, nestedDesc, "Volume").Type().Kind; got != model.TypeFloat {
		t.Fatalf("volume kind: %v", got)
	}

	if got := field(t, desc, "Link").Get(s); got != nil {
		t.Fatalf("nil pointer composite should be nil, got %#v", got)
	}
}

func TestField_Opaque(t *testing.T) {
	s := &settings{Asset: handle{id: "a1"}}
	desc := describe(t, hostreflect.New(), s)

	opaque, ok := field(t, desc, "Asset").Get(s).(model.Opaque)
	if !ok {
		t.Fatalf("expected opaque value, got %T", field(t, desc, "Asset").Get(s))
	}
	if opaque.OpaqueName() != "handle:a1" {
		t.Fatalf("opaque name mismatch: %s", opaque.OpaqueName())
	}
}

func TestDescribe_SelfReferentialType(t *testing.T) {
	h := hostreflect.New()
	desc := describe(t, h, &node{})
	next := field(t, desc, "Next")
	nested, err := next.Type().Describe()
	if err != nil {
		t.Fatalf("describe next: %v", err)
	}
	if nested.Name() != desc.Name() {
		t.Fatalf("expected same descriptor name, got %s and %s", nested.Name(), desc.Name())
	}
}

func TestDescribe_RejectsNonStructPointers(t *testing.T) {
	h := hostreflect.New()
	for _, v := range []any{nil, settings{}, new(int), (*settings)(nil)} {
		if _, err := h.Describe(v); !errors.Is(err, model.ErrConfiguration) {
			t.Fatalf("%T: expected configuration error, got %v", v, err)
		}
	}
}

func TestDescribe_MalformedTags(t *testing.T) {
	type badRange struct {
		V int `range:"zero"`
	}
	type badDraw struct {
		V int `draw:"wobble"`
	}
	type badKind struct {
		V int `draw:"kind=knob"`
	}
	type badMask struct {
		V struct{ A int } `drawfields:"everything"`
	}

	h := hostreflect.New()
	for _, v := range []any{&badRange{}, &badDraw{}, &badKind{}, &badMask{}} {
		_, err := h.Describe(v)
		var cfg *model.ConfigError
		if !errors.As(err, &cfg) {
			t.Fatalf("%T: expected ConfigError, got %v", v, err)
		}
		if cfg.Field != "V" || cfg.Type == "" {
			t.Fatalf("%T: error not located: %#v", v, cfg)
		}
	}
}

func TestDescribe_Decorator(t *testing.T) {
	var calls []string
	decorator := model.DecoratorFunc(func(typeName, fieldName string, declared model.Annotations) model.Annotations {
		calls = append(calls, fieldName)
		if fieldName == "Volume" {
			return append(declared, model.Header{Text: "Levels"})
		}
		return declared
	})

	h := hostreflect.New(hostreflect.WithDecorator(decorator))
	desc := describe(t, h, &audio{})
	if diff := cmp.Diff([]model.Header{{Text: "Levels"}}, field(t, desc, "Volume").Annotations().Headers()); diff != "" {
		t.Fatalf("decorated headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "Volume", "Muted"}, calls); diff != "" {
		t.Fatalf("decorator calls mismatch (-want +got):\n%s", diff)
	}

	describe(t, h, &audio{})
	if len(calls) != 3 {
		t.Fatalf("expected cached descriptor, decorator called %d times", len(calls))
	}
}

func TestParseMask(t *testing.T) {
	mask, err := hostreflect.ParseMask("Public | OnlyDrawAttr")
	if err != nil {
		t.Fatalf("parse mask: %v", err)
	}
	if mask != model.MaskPublic|model.MaskOnlyDrawAttr {
		t.Fatalf("mask mismatch: %v", mask)
	}
	if mask, _ := hostreflect.ParseMask(""); mask != model.MaskAny {
		t.Fatalf("empty mask should be any, got %v", mask)
	}
}
