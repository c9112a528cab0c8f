package catalog

import (
	"context"
	"errors"
)

var ErrTemplateNotFound = errors.New("category template not found")

// Resolver maps a category code to its Template. Not-found is not fatal for
// callers: product forms degrade to zero attribute fields and no variants.
type Resolver interface {
	ResolveTemplate(ctx context.Context, categoryCode string) (Template, error)
}

// MemoryResolver serves templates from an in-memory map. Used for tests and
// as the seed source for the DB-backed resolver.
type MemoryResolver struct {
	templates map[string]Template
}

func NewMemoryResolver(templates []Template) *MemoryResolver {
	m := make(map[string]Template, len(templates))
	for _, t := range templates {
		m[t.Code] = t
	}
	return &MemoryResolver{templates: m}
}

func (r *MemoryResolver) ResolveTemplate(_ context.Context, categoryCode string) (Template, error) {
	t, ok := r.templates[categoryCode]
	if !ok {
		return Template{}, ErrTemplateNotFound
	}
	return t, nil
}

// DefaultTemplates is the built-in category configuration. Categories without
// an entry fall back to a bare product form.
func DefaultTemplates() []Template {
	return []Template{
		{
			Code:          "vetements",
			Name:          "Vêtements",
			HasVariants:   true,
			VariantConfig: []string{"Taille", "Couleur"},
			Attributes: []AttributeField{
				{Code: "marque", Label: "Marque", Type: FieldText, Level: LevelRequired, Required: true},
				{Code: "genre", Label: "Genre", Type: FieldSelect, Level: LevelRequired, Required: true, Options: []string{"Homme", "Femme", "Unisexe", "Enfant"}},
				{Code: "matiere", Label: "Matière", Type: FieldSelect, Level: LevelRecommended, Options: []string{"Coton", "Polyester", "Lin", "Laine", "Autre"}},
				{Code: "matiere_autre", Label: "Précisez la matière", Type: FieldText, Level: LevelOptional, DependsOn: &FieldDependency{Field: "matiere", Value: "Autre"}},
				{Code: "entretien", Label: "Conseils d'entretien", Type: FieldTextarea, Level: LevelOptional},
			},
		},
		{
			Code:          "chaussures",
			Name:          "Chaussures",
			HasVariants:   true,
			VariantConfig: []string{"Pointure", "Couleur"},
			Attributes: []AttributeField{
				{Code: "marque", Label: "Marque", Type: FieldText, Level: LevelRequired, Required: true},
				{Code: "genre", Label: "Genre", Type: FieldRadio, Level: LevelRequired, Required: true, Options: []string{"Homme", "Femme", "Enfant"}},
				{Code: "semelle", Label: "Type de semelle", Type: FieldText, Level: LevelOptional},
			},
		},
		{
			Code:        "electronique",
			Name:        "Électronique",
			HasVariants: false,
			Attributes: []AttributeField{
				{Code: "marque", Label: "Marque", Type: FieldText, Level: LevelRequired, Required: true},
				{Code: "modele", Label: "Modèle", Type: FieldText, Level: LevelRequired, Required: true},
				{Code: "garantie", Label: "Garantie (mois)", Type: FieldNumber, Level: LevelRecommended},
				{Code: "etat", Label: "État", Type: FieldRadio, Level: LevelRequired, Required: true, Options: []string{"Neuf", "Occasion", "Reconditionné"}},
			},
		},
		{
			Code:        "beaute",
			Name:        "Beauté & Soins",
			HasVariants: false,
			Attributes: []AttributeField{
				{Code: "marque", Label: "Marque", Type: FieldText, Level: LevelRequired, Required: true},
				{Code: "contenance", Label: "Contenance (ml)", Type: FieldNumber, Level: LevelRecommended},
				{Code: "bio", Label: "Produit bio", Type: FieldCheckbox, Level: LevelOptional},
				{Code: "teinte", Label: "Teinte", Type: FieldColor, Level: LevelOptional},
			},
		},
	}
}
