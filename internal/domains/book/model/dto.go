package model

import (
	"github.com/shopspring/decimal"
)

// MaxSummaryLength is counted in characters, not bytes.
const MaxSummaryLength = 500

// BookCreate - POST /v1/books
type BookCreate struct {
	Title    string           `json:"title"`
	ISBN     string           `json:"isbn"`
	Year     *int             `json:"year,omitempty"`
	Summary  *string          `json:"summary,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID int64            `json:"authorId"`
}

// BookUpdate - PUT /v1/books/:id
// ISBN is optional here, unlike on create.
type BookUpdate struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	ISBN     string           `json:"isbn,omitempty"`
	Year     *int             `json:"year,omitempty"`
	Summary  *string          `json:"summary,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID int64            `json:"authorId"`
}

type BookResponse struct {
	ID       int64            `json:"id"`
	Title    string           `json:"title"`
	ISBN     string           `json:"isbn"`
	Year     *int             `json:"year,omitempty"`
	Summary  *string          `json:"summary,omitempty"`
	Image    *string          `json:"image,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	AuthorID int64            `json:"authorId"`
}
