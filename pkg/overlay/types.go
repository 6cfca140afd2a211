package overlay

import "github.com/goliatone/go-fieldbind/pkg/model"

// Store holds parsed overlays keyed by type name. The zero value and a nil
// Store are empty.
type Store struct {
	types map[string]TypeOverlay
}

// TypeOverlay holds the overlay for one type.
type TypeOverlay struct {
	Source      string
	Annotations Entry
	Fields      map[string]Entry
}

// Entry is the parsed overlay of a type or field.
type Entry struct {
	Annotations model.Annotations
	// Label replaces the DrawSpec label, adding a default DrawSpec when none
	// is declared.
	Label string
}

type documentFile struct {
	Types map[string]typeFile `json:"types" yaml:"types"`
}

type typeFile struct {
	entryFile `yaml:",inline"`
	Fields    map[string]entryFile `json:"fields" yaml:"fields"`
}

type entryFile struct {
	Draw       *string `json:"draw" yaml:"draw"`
	Label      string  `json:"label" yaml:"label"`
	Header     string  `json:"header" yaml:"header"`
	Space      int     `json:"space" yaml:"space"`
	Range      string  `json:"range" yaml:"range"`
	DrawFields string  `json:"drawfields" yaml:"drawfields"`
	Horizontal bool    `json:"horizontal" yaml:"horizontal"`
}
