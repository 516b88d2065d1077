package catalog

import (
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// MasterInput carries optional fields; nil means "not supplied".
type MasterInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=120"`
	Specialty   *string `json:"specialty" validate:"omitempty,max=120"`
	Experience  *int    `json:"experience" validate:"omitempty,gte=0"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" validate:"omitempty,max=32"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,max=512"`
}

func (in MasterInput) ValidateCreate() error {
	if in.Name == nil || *in.Name == "" {
		return httperr.ErrValidation("Missing required field: name")
	}
	return check(in)
}

func (in MasterInput) ValidateUpdate() error {
	return check(in)
}

func (in MasterInput) NewMaster() *models.Master {
	m := &models.Master{}
	MergeUpdate(m, in)
	if m.PhotoURL != nil && *m.PhotoURL == "" {
		m.PhotoURL = nil
	}
	return m
}

// MergeUpdate copies only the supplied fields of in onto m; everything else
// keeps its stored value.
func MergeUpdate(m *models.Master, in MasterInput) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Specialty != nil {
		m.Specialty = *in.Specialty
	}
	if in.Experience != nil {
		exp := *in.Experience
		m.Experience = &exp
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Icon != nil {
		m.Icon = *in.Icon
	}
	if in.PhotoURL != nil {
		photo := *in.PhotoURL
		m.PhotoURL = &photo
	}
}
