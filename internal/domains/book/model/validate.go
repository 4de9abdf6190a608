package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func (r *BookCreate) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required")),
		validation.Field(&r.Summary,
			validation.RuneLength(0, MaxSummaryLength).Error("summary must be at most 500 characters"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
			validation.Min(int64(1)).Error("author id must be positive"),
		),
	)
}

func (r *BookUpdate) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Summary,
			validation.RuneLength(0, MaxSummaryLength).Error("summary must be at most 500 characters"),
		),
		validation.Field(&r.AuthorID, validation.Min(int64(0)).Error("author id must not be negative")),
	)
}
