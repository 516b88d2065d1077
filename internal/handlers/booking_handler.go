package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/cache"
	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
)

// BookingHandler serves online booking requests. Bookings are stored but
// trigger no notification, unlike contact requests.
type BookingHandler struct {
	repo catalog.BookingRepository
	changes
}

func NewBookingHandler(repo catalog.BookingRepository, recorder audit.Recorder) *BookingHandler {
	return &BookingHandler{
		repo:    repo,
		changes: changes{cache: cache.Nop{}, recorder: recorder, entity: "booking"},
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to load bookings", err))
		return
	}
	httpresp.List(c, bookings)
}

// Create is public.
func (h *BookingHandler) Create(c *gin.Context) {
	var in catalog.BookingInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	b := in.NewBooking()
	if err := h.repo.Create(c.Request.Context(), b); err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to create booking", err))
		return
	}

	h.record(c, audit.ActionCreate, b.ID, nil)
	c.JSON(http.StatusCreated, b)
}

// Update changes status and notes only.
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in catalog.BookingStatusInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, bookingErr(err))
		return
	}

	in.Apply(b)
	if err := h.repo.Save(c.Request.Context(), b); err != nil {
		httperr.Respond(c, bookingErr(err))
		return
	}

	h.record(c, audit.ActionUpdate, b.ID, gin.H{"status": b.Status})
	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, bookingErr(err))
		return
	}

	h.record(c, audit.ActionDelete, id, nil)
	httpresp.Message(c, "Booking deleted successfully")
}

func bookingErr(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return httperr.ErrNotFound("Booking not found")
	}
	return httperr.ErrStore("Failed to access booking", err)
}
