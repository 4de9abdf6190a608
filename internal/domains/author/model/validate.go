package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func (r *AuthorCreate) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required.Error("first name is required")),
		validation.Field(&r.LastName, validation.Required.Error("last name is required")),
	)
}

func (r *AuthorUpdate) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required.Error("first name is required")),
		validation.Field(&r.LastName, validation.Required.Error("last name is required")),
	)
}
