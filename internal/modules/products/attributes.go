package products

import (
	"strconv"
	"strings"

	"bzmarket.com/app/internal/modules/catalog"
)

// ValidateAttributes checks submitted attribute values against a category
// template. Returns field code -> message; empty map means valid.
//
// Rules: visible level-1 fields are required, select/radio values must belong
// to the declared options, number fields must parse, checkbox fields are
// "true"/"false". Fields hidden by a DependsOn condition are skipped entirely.
func ValidateAttributes(tpl catalog.Template, values map[string]string) map[string]string {
	errs := map[string]string{}

	for _, f := range tpl.VisibleFields(values) {
		v := strings.TrimSpace(values[f.Code])

		if v == "" {
			if f.Required || f.Level == catalog.LevelRequired {
				errs[f.Code] = "Ce champ est obligatoire."
			}
			continue
		}

		switch f.Type {
		case catalog.FieldSelect, catalog.FieldRadio:
			if !contains(f.Options, v) {
				errs[f.Code] = "Valeur non autorisée."
			}
		case catalog.FieldNumber:
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				errs[f.Code] = "Valeur numérique attendue."
			}
		case catalog.FieldCheckbox:
			if v != "true" && v != "false" {
				errs[f.Code] = "Valeur non autorisée."
			}
		}
	}

	return errs
}

// KnownAttributes drops submitted values whose code the template does not
// declare, so arbitrary keys never reach storage.
func KnownAttributes(tpl catalog.Template, values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for code, v := range values {
		if _, ok := tpl.FieldByCode(code); ok {
			out[code] = v
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
