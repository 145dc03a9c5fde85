package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseSourcesField(t *testing.T, sources map[string]any) (*ToolUV, []string, error) {
	t.Helper()
	return ParseToolUV(map[string]any{"sources": sources})
}

func TestSourceShapes(t *testing.T) {
	tests := []struct {
		name     string
		entry    map[string]any
		wantKind SourceKind
	}{
		{
			name:     "git with tag",
			entry:    map[string]any{"git": "https://github.com/encode/httpx", "tag": "0.27.0"},
			wantKind: SourceGit,
		},
		{
			name:     "git with subdirectory and marker",
			entry:    map[string]any{"git": "https://github.com/pallets/flask", "subdirectory": "src", "marker": "sys_platform == 'linux'"},
			wantKind: SourceGit,
		},
		{
			name:     "url",
			entry:    map[string]any{"url": "https://files.pythonhosted.org/wheels/torch.whl"},
			wantKind: SourceURL,
		},
		{
			name:     "path editable",
			entry:    map[string]any{"path": "../sibling", "editable": true},
			wantKind: SourcePath,
		},
		{
			name:     "workspace",
			entry:    map[string]any{"workspace": true},
			wantKind: SourceWorkspace,
		},
		{
			name:     "index with extra",
			entry:    map[string]any{"index": "pytorch", "extra": "cu121"},
			wantKind: SourceIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv, _, err := parseSourcesField(t, map[string]any{"dep": tt.entry})
			if err != nil {
				t.Fatalf("ParseToolUV: %v", err)
			}
			spec, ok := uv.Sources["dep"]
			if !ok {
				t.Fatal("source entry missing from model")
			}
			if spec.List {
				t.Error("single entry parsed as list")
			}
			if got := spec.Entries[0].Kind; got != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got, tt.wantKind)
			}
		})
	}
}

func TestSourceDiscriminatorErrors(t *testing.T) {
	tests := []struct {
		name    string
		entry   any
		wantErr string
	}{
		{
			name:    "no discriminator",
			entry:   map[string]any{"tag": "v1.0"},
			wantErr: "sources.dep: source must set exactly one of git, url, path, workspace, index",
		},
		{
			name:    "two discriminators",
			entry:   map[string]any{"git": "https://example.com/r.git", "url": "https://example.com/d.whl"},
			wantErr: "sources.dep: ambiguous source: matches git and url",
		},
		{
			name:    "wrong value type",
			entry:   "https://example.com/r.git",
			wantErr: "sources.dep: expected a source table or list of source tables",
		},
		{
			name:    "non-string git field",
			entry:   map[string]any{"git": 42},
			wantErr: "sources.dep.git: expected a string",
		},
		{
			name:    "non-bool editable",
			entry:   map[string]any{"path": "../x", "editable": "yes"},
			wantErr: "sources.dep.editable: expected a boolean",
		},
		{
			name:    "empty list",
			entry:   []any{},
			wantErr: "sources.dep: source list must not be empty",
		},
		{
			name:    "bad list element names index",
			entry:   []any{map[string]any{"index": "pytorch"}, map[string]any{"tag": "v1"}},
			wantErr: "sources.dep[1]: source must set exactly one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseSourcesField(t, map[string]any{"dep": tt.entry})
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSourceList(t *testing.T) {
	uv, _, err := parseSourcesField(t, map[string]any{
		"torch": []any{
			map[string]any{"index": "pytorch-cu118", "marker": "sys_platform == 'linux'"},
			map[string]any{"index": "pytorch-cpu", "marker": "sys_platform == 'darwin'"},
		},
	})
	if err != nil {
		t.Fatalf("ParseToolUV: %v", err)
	}

	spec := uv.Sources["torch"]
	if !spec.List {
		t.Error("list of alternatives not flagged as list")
	}
	if len(spec.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(spec.Entries))
	}
	if spec.Entries[0].Index != "pytorch-cu118" || spec.Entries[1].Index != "pytorch-cpu" {
		t.Error("list order not preserved")
	}
}

func TestSourceRefWarning(t *testing.T) {
	_, warnings, err := parseSourcesField(t, map[string]any{
		"dep": map[string]any{"git": "https://example.com/r.git", "tag": "v1", "branch": "main"},
	})
	if err != nil {
		t.Fatalf("tag+branch must be a warning, not an error: %v", err)
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "more than one of tag, branch, rev") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ref warning, got %v", warnings)
	}
}

func TestSourceRoundTrip(t *testing.T) {
	sources := map[string]any{
		"httpx": map[string]any{
			"git":          "https://github.com/encode/httpx",
			"tag":          "0.27.0",
			"subdirectory": "httpx",
			"marker":       "python_version >= '3.9'",
			"resolve-mode": "strict", // undeclared shape key, must survive
		},
		"local": map[string]any{"path": "../local", "editable": true, "package": false},
		"ws":    map[string]any{"workspace": true},
		"alts": []any{
			map[string]any{"index": "a", "extra": "gpu"},
			map[string]any{"url": "https://example.com/d.whl"},
		},
	}

	uv, _, err := parseSourcesField(t, sources)
	if err != nil {
		t.Fatalf("ParseToolUV: %v", err)
	}

	got := uv.Map()["sources"]
	if diff := cmp.Diff(map[string]any(sources), got); diff != "" {
		t.Errorf("sources round-trip mismatch (-want +got):\n%s", diff)
	}
}
