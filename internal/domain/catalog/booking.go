package catalog

import "github.com/BruksfildServices01/barbershop-site/internal/models"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type BookingInput struct {
	ClientName  string `json:"client_name" validate:"required,max=120"`
	ClientPhone string `json:"client_phone" validate:"required,max=40"`
	ClientEmail string `json:"client_email" validate:"max=120"`
	Service     string `json:"service" validate:"required,max=120"`
	Master      string `json:"master" validate:"max=120"`
	BookingDate string `json:"booking_date" validate:"required,max=20"`
	BookingTime string `json:"booking_time" validate:"required,max=10"`
	Notes       string `json:"notes"`
}

func (in BookingInput) Validate() error {
	return check(in)
}

func (in BookingInput) NewBooking() *models.Booking {
	return &models.Booking{
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientEmail: in.ClientEmail,
		Service:     in.Service,
		Master:      in.Master,
		BookingDate: in.BookingDate,
		BookingTime: in.BookingTime,
		Status:      string(BookingPending),
		Notes:       in.Notes,
	}
}

type BookingStatusInput struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes  *string `json:"notes"`
}

func (in BookingStatusInput) Validate() error {
	return check(in)
}

// Apply sets the supplied status and notes; omitted ones are kept.
func (in BookingStatusInput) Apply(b *models.Booking) {
	if in.Status != nil {
		b.Status = *in.Status
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}
}
