package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/shared/outcome"
)

func TestAuthorCreate_Validate(t *testing.T) {
	assert.NoError(t, (&AuthorCreate{FirstName: "Frank", LastName: "Herbert"}).Validate())

	fields, ok := outcome.FieldErrors((&AuthorCreate{}).Validate())
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "firstName", fields[0].Field)
	assert.Equal(t, "lastName", fields[1].Field)
}

func TestAuthorUpdate_Validate(t *testing.T) {
	fields, ok := outcome.FieldErrors((&AuthorUpdate{ID: 1, FirstName: "Frank"}).Validate())
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "lastName", fields[0].Field)
}

func TestAuthorMapper(t *testing.T) {
	bio := "American science-fiction author"

	a := AuthorFromCreate(&AuthorCreate{FirstName: "Frank", LastName: "Herbert", Bio: &bio})
	assert.Zero(t, a.ID)

	a.AssignID(12)
	resp := ToAuthorResponse(a)
	assert.Equal(t, &AuthorResponse{ID: 12, FirstName: "Frank", LastName: "Herbert", Bio: &bio}, resp)

	u := AuthorFromUpdate(&AuthorUpdate{ID: 12, FirstName: "Brian", LastName: "Herbert"})
	assert.Equal(t, int64(12), u.EntityID())
	assert.Nil(t, u.Bio)

	assert.Empty(t, ToAuthorResponses(nil))
	assert.Len(t, ToAuthorResponses([]*Author{a, u}), 2)
}

func TestAuthor_CloneIsDeep(t *testing.T) {
	bio := "original"
	a := &Author{ID: 1, FirstName: "Frank", LastName: "Herbert", Bio: &bio}

	c := a.Clone()
	*c.Bio = "changed"

	assert.Equal(t, "original", *a.Bio)
	assert.NotSame(t, a, c)
}
