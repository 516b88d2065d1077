package catalog

import "github.com/BruksfildServices01/barbershop-site/internal/models"

type ReviewInput struct {
	Author string `json:"author" validate:"required,max=120"`
	Date   string `json:"date" validate:"required,max=64"`
	Rating *int   `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required"`
	Avatar string `json:"avatar" validate:"max=32"`
}

func (in ReviewInput) Validate() error {
	return check(in)
}

func (in ReviewInput) NewReview() *models.Review {
	r := &models.Review{}
	ReplaceUpdateReview(r, in)
	return r
}

// ReplaceUpdateReview has the same full-replace semantics as ReplaceUpdate.
func ReplaceUpdateReview(r *models.Review, in ReviewInput) {
	r.Author = in.Author
	r.Date = in.Date
	r.Rating = *in.Rating
	r.Text = in.Text
	r.Avatar = in.Avatar
}
