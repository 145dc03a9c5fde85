package schema

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ToolUV is the validated [tool.uv] section. Declared fields are typed;
// enum values are stored as their raw strings once validated. Extra holds
// every key the schema does not declare, preserved verbatim.
type ToolUV struct {
	Package          *bool
	Managed          *bool
	RequiredVersion  *string
	Resolution       *string
	Prerelease       *string
	PythonPreference *string
	Sources          map[string]SourceSpec

	Extra map[string]any
}

// ParseToolUV validates a raw [tool.uv] mapping against the schema.
// It returns the typed model plus soft warnings, or the first hard
// violation as a *ValidationError.
func ParseToolUV(raw map[string]any) (*ToolUV, []string, error) {
	uv := &ToolUV{Extra: make(map[string]any)}
	var warnings []string

	seen := make(map[string]string) // canonical name -> spelling used

	// Canonical spellings first so they win over aliases.
	for _, pass := range []bool{true, false} {
		for key, value := range raw {
			f, err := Lookup(key)
			if err != nil {
				if pass {
					uv.Extra[key] = value
				}
				continue
			}
			canonical := key == f.Name
			if canonical != pass {
				continue
			}

			if prev, dup := seen[f.Name]; dup {
				warnings = append(warnings, fmt.Sprintf(
					"%s: also spelled %q; keeping the canonical spelling", prev, key))
				continue
			}
			seen[f.Name] = key

			warns, err := uv.assign(f, value)
			if err != nil {
				return nil, nil, err
			}
			warnings = append(warnings, warns...)
		}
	}

	return uv, warnings, nil
}

func (uv *ToolUV) assign(f *Field, value any) ([]string, error) {
	switch f.Type {
	case TypeBool:
		b, ok := value.(bool)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Value: value, Reason: "expected a boolean"}
		}
		switch f.Name {
		case "package":
			uv.Package = &b
		case "managed":
			uv.Managed = &b
		}
		return nil, nil

	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Value: value, Reason: "expected a string"}
		}
		var warnings []string
		switch f.Name {
		case "required-version":
			uv.RequiredVersion = &s
			if _, err := semver.NewConstraint(s); err != nil {
				warnings = append(warnings, fmt.Sprintf(
					"%s: %q does not parse as a version constraint", f.Name, s))
			}
		}
		return warnings, nil

	case TypeEnum:
		s, ok := value.(string)
		if !ok {
			return nil, &ValidationError{Path: f.Name, Value: value, Reason: "expected a string"}
		}
		valid := false
		for _, c := range f.Choices {
			if s == c {
				valid = true
				break
			}
		}
		if !valid {
			return nil, &ValidationError{
				Path:   f.Name,
				Value:  s,
				Reason: fmt.Sprintf("must be one of %s", strings.Join(f.Choices, ", ")),
			}
		}
		switch f.Name {
		case "resolution":
			uv.Resolution = &s
		case "prerelease":
			uv.Prerelease = &s
		case "python-preference":
			uv.PythonPreference = &s
		}
		return nil, nil

	case TypeSources:
		specs, warnings, err := parseSources(f.Name, value)
		if err != nil {
			return nil, err
		}
		uv.Sources = specs
		return warnings, nil
	}

	return nil, &ValidationError{Path: f.Name, Value: value, Reason: "unhandled field type"}
}

// Map rebuilds the generic [tool.uv] mapping: declared fields under their
// canonical names, the residual bag merged back in untouched.
func (uv *ToolUV) Map() map[string]any {
	m := make(map[string]any)

	if uv.Package != nil {
		m["package"] = *uv.Package
	}
	if uv.Managed != nil {
		m["managed"] = *uv.Managed
	}
	if uv.RequiredVersion != nil {
		m["required-version"] = *uv.RequiredVersion
	}
	if uv.Resolution != nil {
		m["resolution"] = *uv.Resolution
	}
	if uv.Prerelease != nil {
		m["prerelease"] = *uv.Prerelease
	}
	if uv.PythonPreference != nil {
		m["python-preference"] = *uv.PythonPreference
	}
	if uv.Sources != nil {
		sources := make(map[string]any, len(uv.Sources))
		for name, spec := range uv.Sources {
			if spec.List {
				list := make([]any, len(spec.Entries))
				for i, e := range spec.Entries {
					list[i] = e.toMap()
				}
				sources[name] = list
			} else if len(spec.Entries) == 1 {
				sources[name] = spec.Entries[0].toMap()
			}
		}
		m["sources"] = sources
	}

	for k, v := range uv.Extra {
		m[k] = v
	}
	return m
}

// ResolutionValue returns the effective resolution strategy, falling back
// to the schema default when the field is unset.
func (uv *ToolUV) ResolutionValue() string {
	if uv.Resolution != nil {
		return *uv.Resolution
	}
	f, _ := Lookup("resolution")
	return f.Default.(string)
}

// Defaults returns the mapping `init` seeds: every schema default, nothing else.
func Defaults() map[string]any {
	m := make(map[string]any)
	for _, f := range Fields {
		if f.Default != nil {
			m[f.Name] = f.Default
		}
	}
	return m
}
