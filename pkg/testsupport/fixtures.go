package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// LoadCalls reads a JSON call trace golden, returning an error for callers
// managing setup outside of *testing.T.
func LoadCalls(path string) ([]Call, error) {
	if path == "" {
		return nil, errors.New("testsupport: golden path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read golden: %w", err)
	}
	var out []Call
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal golden: %w", err)
	}
	return out, nil
}

// MustLoadCalls loads a JSON call trace golden or fails the test.
func MustLoadCalls(t *testing.T, path string) []Call {
	t.Helper()

	calls, err := LoadCalls(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	return calls
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is
// set. Returns true if the golden was written.
func WriteGolden(t *testing.T, path string, value any) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertCalls compares a recorded trace against a golden file, rewriting the
// golden instead when UPDATE_GOLDENS is set.
func AssertCalls(t *testing.T, path string, got []Call) {
	t.Helper()

	if WriteGolden(t, path, got) {
		return
	}
	want := MustLoadCalls(t, path)
	if diff := CompareGolden(want, got); diff != "" {
		t.Fatalf("call trace mismatch (-want +got):\n%s", diff)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
