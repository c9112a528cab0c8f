package products

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bzmarket.com/app/internal/modules/catalog"
)

func clothingTemplate() catalog.Template {
	return catalog.Template{
		Code:        "vetements",
		HasVariants: true,
		Attributes: []catalog.AttributeField{
			{Code: "marque", Label: "Marque", Type: catalog.FieldText, Level: catalog.LevelRequired, Required: true},
			{Code: "genre", Label: "Genre", Type: catalog.FieldSelect, Level: catalog.LevelRequired, Required: true, Options: []string{"Homme", "Femme"}},
			{Code: "garantie", Label: "Garantie", Type: catalog.FieldNumber, Level: catalog.LevelRecommended},
			{Code: "bio", Label: "Bio", Type: catalog.FieldCheckbox, Level: catalog.LevelOptional},
			{Code: "matiere_autre", Label: "Autre matière", Type: catalog.FieldText, Level: catalog.LevelOptional,
				DependsOn: &catalog.FieldDependency{Field: "matiere", Value: "Autre"}},
		},
	}
}

func TestValidateAttributesRequired(t *testing.T) {
	errs := ValidateAttributes(clothingTemplate(), map[string]string{})
	assert.Contains(t, errs, "marque")
	assert.Contains(t, errs, "genre")
	assert.NotContains(t, errs, "garantie")
}

func TestValidateAttributesSelectMembership(t *testing.T) {
	errs := ValidateAttributes(clothingTemplate(), map[string]string{
		"marque": "BZ", "genre": "Robot",
	})
	assert.Contains(t, errs, "genre")

	errs = ValidateAttributes(clothingTemplate(), map[string]string{
		"marque": "BZ", "genre": "Homme",
	})
	assert.Empty(t, errs)
}

func TestValidateAttributesNumberAndCheckbox(t *testing.T) {
	errs := ValidateAttributes(clothingTemplate(), map[string]string{
		"marque": "BZ", "genre": "Femme", "garantie": "douze", "bio": "oui",
	})
	assert.Contains(t, errs, "garantie")
	assert.Contains(t, errs, "bio")

	errs = ValidateAttributes(clothingTemplate(), map[string]string{
		"marque": "BZ", "genre": "Femme", "garantie": "12", "bio": "true",
	})
	assert.Empty(t, errs)
}

func TestValidateAttributesHiddenDependentSkipped(t *testing.T) {
	// matiere_autre n'est visible que si matiere=Autre; sans cela, sa valeur
	// n'est jamais validée
	errs := ValidateAttributes(clothingTemplate(), map[string]string{
		"marque": "BZ", "genre": "Homme",
	})
	assert.NotContains(t, errs, "matiere_autre")
}

func TestKnownAttributesDropsUnknownCodes(t *testing.T) {
	got := KnownAttributes(clothingTemplate(), map[string]string{
		"marque": "BZ", "inconnu": "x",
	})
	assert.Equal(t, map[string]string{"marque": "BZ"}, got)
}

func TestDefaultBaseSKU(t *testing.T) {
	assert.Equal(t, "TEE", defaultBaseSKU("Tee-shirt Été"))
	assert.Equal(t, "SAC", defaultBaseSKU("sac"))
	// nom vide -> slug de repli "produit"
	assert.Equal(t, "PRO", defaultBaseSKU("   "))
}
