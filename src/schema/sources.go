package schema

import (
	"fmt"
	"sort"
	"strings"
)

// SourceKind identifies one of the five dependency source shapes.
type SourceKind string

const (
	SourceGit       SourceKind = "git"
	SourceURL       SourceKind = "url"
	SourcePath      SourceKind = "path"
	SourceWorkspace SourceKind = "workspace"
	SourceIndex     SourceKind = "index"
)

var sourceKinds = []SourceKind{SourceGit, SourceURL, SourcePath, SourceWorkspace, SourceIndex}

// Source is one dependency source entry, discriminated by Kind.
// Only the fields belonging to Kind are meaningful; Unknown carries
// keys the shape does not declare, preserved for round-trips.
type Source struct {
	Kind SourceKind

	// git
	Git          string
	Tag          string
	Branch       string
	Rev          string
	Subdirectory string

	// url
	URL string

	// path
	Path     string
	Editable *bool
	Package  *bool

	// workspace
	Workspace *bool

	// index
	Index string
	Extra string

	// Marker is an environment marker, valid on every shape.
	Marker string

	Unknown map[string]any
}

// SourceSpec is the value attached to one dependency name: a single
// source entry, or an ordered list of platform-conditional alternatives.
type SourceSpec struct {
	Entries []Source
	List    bool
}

// parseSources validates the full `sources` mapping.
func parseSources(path string, raw any) (map[string]SourceSpec, []string, error) {
	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, &ValidationError{Path: path, Value: raw, Reason: "expected a table of dependency sources"}
	}

	specs := make(map[string]SourceSpec, len(mapping))
	var warnings []string

	// Deterministic error order for maps.
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		epath := path + "." + name
		switch v := mapping[name].(type) {
		case map[string]any:
			src, warns, err := parseSource(epath, v)
			if err != nil {
				return nil, nil, err
			}
			warnings = append(warnings, warns...)
			specs[name] = SourceSpec{Entries: []Source{src}}

		case []any:
			if len(v) == 0 {
				return nil, nil, &ValidationError{Path: epath, Value: v, Reason: "source list must not be empty"}
			}
			entries := make([]Source, 0, len(v))
			for i, item := range v {
				ipath := fmt.Sprintf("%s[%d]", epath, i)
				m, ok := item.(map[string]any)
				if !ok {
					return nil, nil, &ValidationError{Path: ipath, Value: item, Reason: "expected a source table"}
				}
				src, warns, err := parseSource(ipath, m)
				if err != nil {
					return nil, nil, err
				}
				warnings = append(warnings, warns...)
				entries = append(entries, src)
			}
			specs[name] = SourceSpec{Entries: entries, List: true}

		default:
			return nil, nil, &ValidationError{Path: epath, Value: v, Reason: "expected a source table or list of source tables"}
		}
	}

	return specs, warnings, nil
}

// parseSource validates a single source table against the five shapes.
func parseSource(path string, raw map[string]any) (Source, []string, error) {
	var present []SourceKind
	for _, k := range sourceKinds {
		if _, ok := raw[string(k)]; ok {
			present = append(present, k)
		}
	}

	switch len(present) {
	case 0:
		return Source{}, nil, &ValidationError{
			Path:   path,
			Value:  keysOf(raw),
			Reason: "source must set exactly one of git, url, path, workspace, index",
		}
	case 1:
	default:
		kinds := make([]string, len(present))
		for i, k := range present {
			kinds[i] = string(k)
		}
		return Source{}, nil, &ValidationError{
			Path:   path,
			Value:  keysOf(raw),
			Reason: fmt.Sprintf("ambiguous source: matches %s", strings.Join(kinds, " and ")),
		}
	}

	src := Source{Kind: present[0]}
	var warnings []string
	known := map[string]bool{"marker": true}

	var err error
	switch src.Kind {
	case SourceGit:
		known["git"], known["tag"], known["branch"], known["rev"], known["subdirectory"] = true, true, true, true, true
		if src.Git, err = stringKey(path, raw, "git"); err != nil {
			return Source{}, nil, err
		}
		if src.Tag, err = stringKey(path, raw, "tag"); err != nil {
			return Source{}, nil, err
		}
		if src.Branch, err = stringKey(path, raw, "branch"); err != nil {
			return Source{}, nil, err
		}
		if src.Rev, err = stringKey(path, raw, "rev"); err != nil {
			return Source{}, nil, err
		}
		if src.Subdirectory, err = stringKey(path, raw, "subdirectory"); err != nil {
			return Source{}, nil, err
		}
		refs := 0
		for _, ref := range []string{src.Tag, src.Branch, src.Rev} {
			if ref != "" {
				refs++
			}
		}
		if refs > 1 {
			warnings = append(warnings, fmt.Sprintf("%s: more than one of tag, branch, rev is set; uv honors only one", path))
		}

	case SourceURL:
		known["url"] = true
		if src.URL, err = stringKey(path, raw, "url"); err != nil {
			return Source{}, nil, err
		}

	case SourcePath:
		known["path"], known["editable"], known["package"] = true, true, true
		if src.Path, err = stringKey(path, raw, "path"); err != nil {
			return Source{}, nil, err
		}
		if src.Editable, err = boolKey(path, raw, "editable"); err != nil {
			return Source{}, nil, err
		}
		if src.Package, err = boolKey(path, raw, "package"); err != nil {
			return Source{}, nil, err
		}

	case SourceWorkspace:
		known["workspace"] = true
		if src.Workspace, err = boolKey(path, raw, "workspace"); err != nil {
			return Source{}, nil, err
		}

	case SourceIndex:
		known["index"], known["extra"] = true, true
		if src.Index, err = stringKey(path, raw, "index"); err != nil {
			return Source{}, nil, err
		}
		if src.Extra, err = stringKey(path, raw, "extra"); err != nil {
			return Source{}, nil, err
		}
	}

	if src.Marker, err = stringKey(path, raw, "marker"); err != nil {
		return Source{}, nil, err
	}

	for k, v := range raw {
		if !known[k] {
			if src.Unknown == nil {
				src.Unknown = make(map[string]any)
			}
			src.Unknown[k] = v
		}
	}

	return src, warnings, nil
}

// toMap rebuilds the generic representation, Unknown keys included.
func (s Source) toMap() map[string]any {
	m := make(map[string]any)

	switch s.Kind {
	case SourceGit:
		m["git"] = s.Git
		putString(m, "tag", s.Tag)
		putString(m, "branch", s.Branch)
		putString(m, "rev", s.Rev)
		putString(m, "subdirectory", s.Subdirectory)
	case SourceURL:
		m["url"] = s.URL
	case SourcePath:
		m["path"] = s.Path
		if s.Editable != nil {
			m["editable"] = *s.Editable
		}
		if s.Package != nil {
			m["package"] = *s.Package
		}
	case SourceWorkspace:
		if s.Workspace != nil {
			m["workspace"] = *s.Workspace
		} else {
			m["workspace"] = true
		}
	case SourceIndex:
		m["index"] = s.Index
		putString(m, "extra", s.Extra)
	}

	putString(m, "marker", s.Marker)
	for k, v := range s.Unknown {
		m[k] = v
	}
	return m
}

func putString(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}

func stringKey(path string, raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Path: path + "." + key, Value: v, Reason: "expected a string"}
	}
	return s, nil
}

func boolKey(path string, raw map[string]any, key string) (*bool, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, &ValidationError{Path: path + "." + key, Value: v, Reason: "expected a boolean"}
	}
	return &b, nil
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
