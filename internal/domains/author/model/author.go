package model

// Author is the persisted catalog author.
type Author struct {
	ID        int64   `json:"id" db:"id"`
	FirstName string  `json:"firstName" db:"first_name"`
	LastName  string  `json:"lastName" db:"last_name"`
	Bio       *string `json:"bio" db:"bio"`
}

func (a *Author) EntityID() int64 { return a.ID }

func (a *Author) AssignID(id int64) { a.ID = id }

// Clone returns a deep copy so callers cannot alias stored state.
func (a *Author) Clone() *Author {
	c := *a
	if a.Bio != nil {
		bio := *a.Bio
		c.Bio = &bio
	}
	return &c
}

// AuthorCreate - POST /v1/authors
type AuthorCreate struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Bio       *string `json:"bio,omitempty"`
}

// AuthorUpdate - PUT /v1/authors/:id
// Full replace of the mutable fields; ID must match the path.
type AuthorUpdate struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Bio       *string `json:"bio,omitempty"`
}

type AuthorResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Bio       *string `json:"bio,omitempty"`
}
