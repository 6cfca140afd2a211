package overlay

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldbind/pkg/hostreflect"
	"github.com/goliatone/go-fieldbind/pkg/model"
)

// LoadDir loads every overlay file below dir.
func LoadDir(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return &Store{types: map[string]TypeOverlay{}}, nil
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or no overlay files are present, the returned store is
// empty. A type defined in more than one file is an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{types: make(map[string]TypeOverlay)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("overlay: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Types {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("overlay: file %s defines an empty type name", path)
			}
			if prev, exists := store.types[name]; exists {
				return fmt.Errorf("overlay: duplicate type %q (files %s and %s)", name, prev.Source, path)
			}
			overlay, err := normaliseType(raw, name, path)
			if err != nil {
				return err
			}
			store.types[name] = overlay
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("overlay: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("overlay: parse %s: invalid JSON or YAML", source)
}

func normaliseType(raw typeFile, name, source string) (TypeOverlay, error) {
	typeEntry, err := normaliseEntry(raw.entryFile)
	if err != nil {
		return TypeOverlay{}, fmt.Errorf("overlay: %s: type %s: %w", source, name, model.Locate(err, name, ""))
	}
	out := TypeOverlay{
		Source:      source,
		Annotations: typeEntry,
		Fields:      make(map[string]Entry, len(raw.Fields)),
	}
	for rawField, cfg := range raw.Fields {
		field := strings.TrimSpace(rawField)
		if field == "" {
			return TypeOverlay{}, fmt.Errorf("overlay: %s: type %s defines an empty field name", source, name)
		}
		entry, err := normaliseEntry(cfg)
		if err != nil {
			return TypeOverlay{}, fmt.Errorf("overlay: %s: %w", source, model.Locate(err, name, field))
		}
		out.Fields[field] = entry
	}
	return out, nil
}

// normaliseEntry converts file values into annotations in the order struct
// tags are read.
func normaliseEntry(raw entryFile) (Entry, error) {
	var anns model.Annotations
	if raw.Space != 0 {
		anns = append(anns, model.Space{Height: raw.Space})
	}
	if header := sanitizeText(raw.Header); header != "" {
		anns = append(anns, model.Header{Text: header})
	}
	if raw.Draw != nil {
		spec, err := hostreflect.ParseDrawSpec(*raw.Draw)
		if err != nil {
			return Entry{}, err
		}
		spec.Label = sanitizeText(spec.Label)
		anns = append(anns, spec)
	}
	if strings.TrimSpace(raw.Range) != "" {
		hint, err := hostreflect.ParseRange(raw.Range)
		if err != nil {
			return Entry{}, err
		}
		anns = append(anns, hint)
	}
	if strings.TrimSpace(raw.DrawFields) != "" {
		mask, err := hostreflect.ParseMask(raw.DrawFields)
		if err != nil {
			return Entry{}, err
		}
		anns = append(anns, model.FieldSelectionPolicy{Mask: mask})
	}
	if raw.Horizontal {
		anns = append(anns, model.Horizontal{})
	}
	return Entry{Annotations: anns, Label: sanitizeText(raw.Label)}, nil
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Type returns the overlay registered for the type name.
func (s *Store) Type(name string) (TypeOverlay, bool) {
	if s == nil {
		return TypeOverlay{}, false
	}
	overlay, ok := s.types[name]
	return overlay, ok
}

// Types lists the registered type names in sorted order.
func (s *Store) Types() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.types) == 0
}
