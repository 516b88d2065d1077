package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

func ptr[T any](v T) *T { return &v }

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	var he *httperr.Error
	require.ErrorAs(t, err, &he)
	assert.Equal(t, httperr.KindValidation, he.Kind)
	return he.Message
}

func TestServiceInput_Validate(t *testing.T) {
	valid := catalog.ServiceInput{Name: "Fade", Price: ptr(1500), Duration: ptr(45)}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		in   catalog.ServiceInput
		want string
	}{
		{"missing name", catalog.ServiceInput{Price: ptr(1), Duration: ptr(1)}, "Missing required field: name"},
		{"missing price", catalog.ServiceInput{Name: "x", Duration: ptr(1)}, "Missing required field: price"},
		{"zero price", catalog.ServiceInput{Name: "x", Price: ptr(0), Duration: ptr(1)}, "Price must be a positive number"},
		{"negative duration", catalog.ServiceInput{Name: "x", Price: ptr(10), Duration: ptr(-5)}, "Duration must be a positive number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validationMessage(t, tc.in.Validate()))
		})
	}
}

func TestReplaceUpdate_ClearsOmittedOptionalFields(t *testing.T) {
	s := &models.Service{ID: 3, Name: "Old", Description: "desc", Price: 100, Duration: 30, Icon: "✂️"}

	catalog.ReplaceUpdate(s, catalog.ServiceInput{Name: "New", Price: ptr(200), Duration: ptr(60)})

	assert.Equal(t, uint(3), s.ID)
	assert.Equal(t, "New", s.Name)
	assert.Equal(t, 200, s.Price)
	assert.Equal(t, 60, s.Duration)
	assert.Empty(t, s.Description)
	assert.Empty(t, s.Icon)
}

func TestMasterInput_ValidateCreate(t *testing.T) {
	assert.Equal(t, "Missing required field: name", validationMessage(t, catalog.MasterInput{}.ValidateCreate()))
	assert.Equal(t, "Missing required field: name", validationMessage(t, catalog.MasterInput{Name: ptr("")}.ValidateCreate()))

	msg := validationMessage(t, catalog.MasterInput{Name: ptr("Ivan"), Experience: ptr(-1)}.ValidateCreate())
	assert.Equal(t, "Experience must be a non-negative number", msg)

	require.NoError(t, catalog.MasterInput{Name: ptr("Ivan"), Experience: ptr(0)}.ValidateCreate())
}

func TestMergeUpdate_KeepsOmittedFields(t *testing.T) {
	m := &models.Master{Name: "A", Specialty: "B", Experience: ptr(7), PhotoURL: ptr("/uploads/masters/1-a.png")}

	catalog.MergeUpdate(m, catalog.MasterInput{Name: ptr("C")})

	assert.Equal(t, "C", m.Name)
	assert.Equal(t, "B", m.Specialty)
	assert.Equal(t, 7, *m.Experience)
	assert.Equal(t, "/uploads/masters/1-a.png", m.Photo())
}

func TestNewMaster_EmptyPhotoIsNull(t *testing.T) {
	m := catalog.MasterInput{Name: ptr("Ivan"), PhotoURL: ptr("")}.NewMaster()
	assert.Nil(t, m.PhotoURL)
}

func TestReviewInput_Validate(t *testing.T) {
	ok := catalog.ReviewInput{Author: "Anna", Date: "12 марта", Rating: ptr(5), Text: "Great"}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Rating = ptr(6)
	assert.Equal(t, "Rating must be a number between 1 and 5", validationMessage(t, bad.Validate()))

	bad.Rating = ptr(0)
	assert.Equal(t, "Rating must be a number between 1 and 5", validationMessage(t, bad.Validate()))

	missing := ok
	missing.Text = ""
	assert.Equal(t, "Missing required field: text", validationMessage(t, missing.Validate()))
}

func TestBookingStatusInput(t *testing.T) {
	b := &models.Booking{Status: "pending", Notes: "call first"}

	in := catalog.BookingStatusInput{Status: ptr("confirmed")}
	require.NoError(t, in.Validate())
	in.Apply(b)
	assert.Equal(t, "confirmed", b.Status)
	assert.Equal(t, "call first", b.Notes)

	err := catalog.BookingStatusInput{Status: ptr("done")}.Validate()
	assert.Contains(t, validationMessage(t, err), "Status must be one of")
}

func TestBookingInput_DefaultsToPending(t *testing.T) {
	in := catalog.BookingInput{
		ClientName:  "Oleg",
		ClientPhone: "+7 900",
		Service:     "Fade",
		BookingDate: "2026-10-20",
		BookingTime: "14:00",
	}
	require.NoError(t, in.Validate())
	assert.Equal(t, "pending", in.NewBooking().Status)

	in.BookingTime = ""
	assert.Equal(t, "Missing required field: booking_time", validationMessage(t, in.Validate()))
}

func TestContactInput_RequiresPhone(t *testing.T) {
	err := catalog.ContactInput{Name: "Oleg"}.Validate()
	assert.Equal(t, "Missing required field: phone", validationMessage(t, err))
}

func TestValidateSettings(t *testing.T) {
	require.NoError(t, catalog.ValidateSettings(map[string]string{"address": "X"}))
	require.NoError(t, catalog.ValidateSettings(map[string]string{}))
	validationMessage(t, catalog.ValidateSettings(map[string]string{"": "x"}))
}
