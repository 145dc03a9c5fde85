package schema

// FieldType classifies how a declared field is validated.
type FieldType string

const (
	TypeBool    FieldType = "bool"
	TypeString  FieldType = "string"
	TypeEnum    FieldType = "enum"
	TypeSources FieldType = "sources"
)

// Field describes one recognized [tool.uv] option.
type Field struct {
	// Name is the canonical (hyphenated) key as it appears in pyproject.toml.
	Name string

	// Alias is the underscore spelling, accepted interchangeably.
	// Empty when the canonical name has no separator.
	Alias string

	// Type selects the validation rule applied to the raw value.
	Type FieldType

	// Choices lists the allowed values for enum fields.
	Choices []string

	// Default is the value `init` seeds, nil when the field has no default.
	Default any

	// Description is the human-readable help shown by `param` and `annotate`.
	Description string
}

// Fields is the declared schema, in presentation order.
// Unknown keys are never rejected — the upstream format evolves
// independently, so everything outside this table passes through verbatim.
var Fields = []Field{
	{
		Name:        "package",
		Type:        TypeBool,
		Default:     true,
		Description: "Whether the project is built and installed as a package.",
	},
	{
		Name:        "managed",
		Type:        TypeBool,
		Description: "Whether uv manages the project environment and lockfile.",
	},
	{
		Name:        "required-version",
		Alias:       "required_version",
		Type:        TypeString,
		Description: "Version specifier the installed uv must satisfy (e.g. \">=0.4.0\").",
	},
	{
		Name:        "resolution",
		Type:        TypeEnum,
		Choices:     []string{"highest", "lowest", "lowest-direct"},
		Default:     "highest",
		Description: "Strategy for selecting among compatible candidate versions.",
	},
	{
		Name:        "prerelease",
		Type:        TypeEnum,
		Choices:     []string{"allow", "disallow", "if-necessary", "explicit"},
		Description: "Whether pre-release versions are considered during resolution.",
	},
	{
		Name:        "python-preference",
		Alias:       "python_preference",
		Type:        TypeEnum,
		Choices:     []string{"managed", "system", "only-managed", "only-system"},
		Description: "Preference between uv-managed and system Python installations.",
	},
	{
		Name:        "sources",
		Type:        TypeSources,
		Description: "Per-dependency source overrides (git, url, path, workspace, index).",
	},
}

var (
	fieldsByName  = make(map[string]*Field, len(Fields))
	fieldsByAlias = make(map[string]*Field, len(Fields))
)

func init() {
	for i := range Fields {
		f := &Fields[i]
		fieldsByName[f.Name] = f
		if f.Alias != "" {
			fieldsByAlias[f.Alias] = f
		}
	}
}

// Lookup resolves a field by canonical or alias name.
func Lookup(name string) (*Field, error) {
	if f, ok := fieldsByName[name]; ok {
		return f, nil
	}
	if f, ok := fieldsByAlias[name]; ok {
		return f, nil
	}
	return nil, &NotFoundError{Name: name}
}

// Canonical maps canonical or alias spelling to the canonical name.
// Names outside the schema are returned unchanged.
func Canonical(name string) string {
	if f, err := Lookup(name); err == nil {
		return f.Name
	}
	return name
}
