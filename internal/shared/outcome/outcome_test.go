package outcome

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_SortedByField(t *testing.T) {
	err := validation.Errors{
		"lastName":  errors.New("cannot be blank"),
		"firstName": errors.New("cannot be blank"),
	}

	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []FieldError{
		{Field: "firstName", Message: "cannot be blank"},
		{Field: "lastName", Message: "cannot be blank"},
	}, fields)
}

func TestFieldErrors_NotValidation(t *testing.T) {
	_, ok := FieldErrors(errors.New("boom"))
	assert.False(t, ok)
}

func TestInternalError_GenericMessage(t *testing.T) {
	out := InternalError()
	assert.Equal(t, KindInternalError, out.Kind)
	assert.Equal(t, GenericErrorMessage, out.Message)
	assert.Nil(t, out.Payload)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "created", KindCreated.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "internal_error", Kind(99).String())
}
