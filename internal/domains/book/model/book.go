package model

import (
	"github.com/shopspring/decimal"
)

// Book is the persisted catalog book. AuthorID references authors.id.
type Book struct {
	ID       int64               `json:"id" db:"id"`
	Title    string              `json:"title" db:"title"`
	ISBN     string              `json:"isbn" db:"isbn"`
	Year     *int                `json:"year" db:"year"`
	Summary  *string             `json:"summary" db:"summary"`
	Image    *string             `json:"image" db:"image"`
	Price    decimal.NullDecimal `json:"price" db:"price"`
	AuthorID int64               `json:"authorId" db:"author_id"`
}

func (b *Book) EntityID() int64 { return b.ID }

func (b *Book) AssignID(id int64) { b.ID = id }

func (b *Book) Clone() *Book {
	c := *b
	c.Year = cloneInt(b.Year)
	c.Summary = cloneString(b.Summary)
	c.Image = cloneString(b.Image)
	return &c
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
