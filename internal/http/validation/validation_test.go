package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/http/validation"
)

type sample struct {
	Email string `json:"email" binding:"required,email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"min=2"`
	Plain string `validate:"required"`
}

func TestFromBindErrorResolvesJSONTags(t *testing.T) {
	v := validator.New()
	err := v.Struct(sample{Email: "not-an-email", Name: "x"})
	require.Error(t, err)

	fields := validation.FromBindError(err, &sample{})
	assert.Equal(t, "Bitte eine gültige E-Mail-Adresse angeben.", fields["email"])
	assert.Equal(t, "Mindestens 2 Zeichen erforderlich.", fields["name"])
	assert.Equal(t, "Dieses Feld ist erforderlich.", fields["plain"])
}

func TestFromBindErrorNonValidationError(t *testing.T) {
	fields := validation.FromBindError(assert.AnError, &sample{})
	assert.Equal(t, "Die übermittelten Daten sind ungültig.", fields["_"])
}
