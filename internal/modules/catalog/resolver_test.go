package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryResolver(t *testing.T) {
	r := NewMemoryResolver(DefaultTemplates())

	tpl, err := r.ResolveTemplate(context.Background(), "vetements")
	require.NoError(t, err)
	assert.True(t, tpl.HasVariants)
	assert.Equal(t, []string{"Taille", "Couleur"}, tpl.VariantConfig)

	_, err = r.ResolveTemplate(context.Background(), "inexistant")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestTemplateVisibleFields(t *testing.T) {
	r := NewMemoryResolver(DefaultTemplates())
	tpl, err := r.ResolveTemplate(context.Background(), "vetements")
	require.NoError(t, err)

	// champ conditionnel masqué par défaut
	visible := tpl.VisibleFields(map[string]string{"matiere": "Coton"})
	for _, f := range visible {
		assert.NotEqual(t, "matiere_autre", f.Code)
	}

	visible = tpl.VisibleFields(map[string]string{"matiere": "Autre"})
	found := false
	for _, f := range visible {
		if f.Code == "matiere_autre" {
			found = true
		}
	}
	assert.True(t, found)
}
