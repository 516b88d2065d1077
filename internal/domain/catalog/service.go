package catalog

import "github.com/BruksfildServices01/barbershop-site/internal/models"

type ServiceInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	Price       *int   `json:"price" validate:"required,gt=0"`
	Duration    *int   `json:"duration" validate:"required,gt=0"`
	Icon        string `json:"icon" validate:"max=32"`
}

func (in ServiceInput) Validate() error {
	return check(in)
}

func (in ServiceInput) NewService() *models.Service {
	s := &models.Service{}
	ReplaceUpdate(s, in)
	return s
}

// ReplaceUpdate overwrites every field of s with in. Callers validate in
// first; absent optional fields are cleared.
func ReplaceUpdate(s *models.Service, in ServiceInput) {
	s.Name = in.Name
	s.Description = in.Description
	s.Price = *in.Price
	s.Duration = *in.Duration
	s.Icon = in.Icon
}
