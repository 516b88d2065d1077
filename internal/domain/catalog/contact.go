package catalog

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=120"`
	Phone   string `json:"phone" validate:"required,max=40"`
	Email   string `json:"email" validate:"max=120"`
	Message string `json:"message" validate:"max=4000"`
}

func (in ContactInput) Validate() error {
	return check(in)
}
