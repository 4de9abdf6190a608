package model

import (
	"github.com/shopspring/decimal"
)

func BookFromCreate(req *BookCreate) *Book {
	return &Book{
		Title:    req.Title,
		ISBN:     req.ISBN,
		Year:     req.Year,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    toNullDecimal(req.Price),
		AuthorID: req.AuthorID,
	}
}

func BookFromUpdate(req *BookUpdate) *Book {
	return &Book{
		ID:       req.ID,
		Title:    req.Title,
		ISBN:     req.ISBN,
		Year:     req.Year,
		Summary:  req.Summary,
		Image:    req.Image,
		Price:    toNullDecimal(req.Price),
		AuthorID: req.AuthorID,
	}
}

func ToBookResponse(b *Book) *BookResponse {
	return &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		ISBN:     b.ISBN,
		Year:     b.Year,
		Summary:  b.Summary,
		Image:    b.Image,
		Price:    fromNullDecimal(b.Price),
		AuthorID: b.AuthorID,
	}
}

func ToBookResponses(books []*Book) []*BookResponse {
	out := make([]*BookResponse, len(books))
	for i, b := range books {
		out[i] = ToBookResponse(b)
	}
	return out
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
