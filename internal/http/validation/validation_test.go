package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"oneof=client vendor"`
}

func TestFromBindError(t *testing.T) {
	v := validator.New()

	err := v.Struct(registerPayload{Email: "pas-un-email", Password: "court", Role: "admin"})
	require.Error(t, err)

	fields := FromBindError(err, &registerPayload{})
	assert.Equal(t, "Adresse e-mail invalide.", fields["email"])
	assert.Equal(t, "Minimum 8 caractères.", fields["password"])
	assert.Equal(t, "Valeur non autorisée.", fields["role"])
}

func TestFromBindErrorNonValidation(t *testing.T) {
	fields := FromBindError(errors.New("unexpected EOF"), &registerPayload{})
	assert.Equal(t, "Données de requête invalides.", fields["_"])
}
