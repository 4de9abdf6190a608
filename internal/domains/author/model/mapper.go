package model

// AuthorFromCreate copies the request field for field. No validation.
func AuthorFromCreate(req *AuthorCreate) *Author {
	return &Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}
}

func AuthorFromUpdate(req *AuthorUpdate) *Author {
	return &Author{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}
}

func ToAuthorResponse(a *Author) *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       a.Bio,
	}
}

func ToAuthorResponses(authors []*Author) []*AuthorResponse {
	out := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = ToAuthorResponse(a)
	}
	return out
}
