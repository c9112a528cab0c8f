package catalog

// FieldType is the closed set of attribute input kinds a category template
// can declare. The rendering layer pattern-matches on it; the core never
// interprets it beyond membership checks.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldTextarea FieldType = "textarea"
	FieldColor    FieldType = "color"
)

// Attribute levels: 1 = obligatoire, 2 = recommandé, 3 = optionnel.
const (
	LevelRequired    = 1
	LevelRecommended = 2
	LevelOptional    = 3
)

// FieldDependency hides a field until another field holds a given value.
type FieldDependency struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// AttributeField describes one dynamic form field of a category template.
type AttributeField struct {
	Code      string           `json:"code"`
	Label     string           `json:"label"`
	Type      FieldType        `json:"type"`
	Level     int              `json:"level"`
	Required  bool             `json:"required"`
	Options   []string         `json:"options,omitempty"`
	DependsOn *FieldDependency `json:"depends_on,omitempty"`
}

// Template is the category-specific schema of attribute fields and variant
// configuration. It is read-only data supplied by a Resolver.
type Template struct {
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	HasVariants   bool             `json:"has_variants"`
	VariantConfig []string         `json:"variant_config,omitempty"`
	Attributes    []AttributeField `json:"attributes"`
}

// FieldByCode returns the attribute field with the given code.
func (t Template) FieldByCode(code string) (AttributeField, bool) {
	for _, f := range t.Attributes {
		if f.Code == code {
			return f, true
		}
	}
	return AttributeField{}, false
}

// VisibleFields filters attributes by their DependsOn condition against the
// submitted values. Fields with no dependency are always visible.
func (t Template) VisibleFields(values map[string]string) []AttributeField {
	out := make([]AttributeField, 0, len(t.Attributes))
	for _, f := range t.Attributes {
		if f.DependsOn != nil && values[f.DependsOn.Field] != f.DependsOn.Value {
			continue
		}
		out = append(out, f)
	}
	return out
}
