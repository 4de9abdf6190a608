// Package outcome is the transport-neutral result of a resource operation.
package outcome

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Kind int

const (
	KindOK Kind = iota
	KindCreated
	KindNoContent
	KindBadRequest
	KindNotFound
	KindInternalError
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindCreated:
		return "created"
	case KindNoContent:
		return "no_content"
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}

// GenericErrorMessage is the only text an InternalError ever carries.
const GenericErrorMessage = "Something went wrong. Please contact the Administrator"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Outcome struct {
	Kind    Kind
	Payload any
	Message string
	Errors  []FieldError
}

func OK(payload any) Outcome { return Outcome{Kind: KindOK, Payload: payload} }

func Created(payload any) Outcome { return Outcome{Kind: KindCreated, Payload: payload} }

func NoContent() Outcome { return Outcome{Kind: KindNoContent} }

func NotFound() Outcome { return Outcome{Kind: KindNotFound} }

func BadRequest(message string, errs ...FieldError) Outcome {
	return Outcome{Kind: KindBadRequest, Message: message, Errors: errs}
}

func InternalError() Outcome {
	return Outcome{Kind: KindInternalError, Message: GenericErrorMessage}
}

// FieldErrors flattens ozzo validation errors into a list sorted by field.
// ok is false when err is not a validation.Errors, e.g. an internal
// validator failure.
func FieldErrors(err error) ([]FieldError, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make([]FieldError, 0, len(verrs))
	for field, ferr := range verrs {
		out = append(out, FieldError{Field: field, Message: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out, true
}
