package schema

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
		wantErr   bool
	}{
		{name: "canonical", query: "resolution", wantField: "resolution"},
		{name: "canonical hyphenated", query: "required-version", wantField: "required-version"},
		{name: "alias underscore", query: "required_version", wantField: "required-version"},
		{name: "alias python_preference", query: "python_preference", wantField: "python-preference"},
		{name: "unknown", query: "cache-dir", wantErr: true},
		{name: "empty", query: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Lookup(%q): expected error, got field %q", tt.query, f.Name)
				}
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("Lookup(%q): error type %T, want *NotFoundError", tt.query, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.query, err)
			}
			if f.Name != tt.wantField {
				t.Errorf("Lookup(%q) = %q, want %q", tt.query, f.Name, tt.wantField)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("required_version"); got != "required-version" {
		t.Errorf("Canonical(required_version) = %q", got)
	}
	if got := Canonical("resolution"); got != "resolution" {
		t.Errorf("Canonical(resolution) = %q", got)
	}
	// Unknown names pass through unchanged.
	if got := Canonical("cache_dir"); got != "cache_dir" {
		t.Errorf("Canonical(cache_dir) = %q", got)
	}
}

func TestFieldTableInvariants(t *testing.T) {
	names := make(map[string]bool)
	aliases := make(map[string]bool)

	for _, f := range Fields {
		if names[f.Name] {
			t.Errorf("duplicate canonical name %q", f.Name)
		}
		names[f.Name] = true

		if f.Alias == "" {
			continue
		}
		if aliases[f.Alias] {
			t.Errorf("duplicate alias %q", f.Alias)
		}
		aliases[f.Alias] = true
		if names[f.Alias] {
			t.Errorf("alias %q collides with a canonical name", f.Alias)
		}
	}
}
