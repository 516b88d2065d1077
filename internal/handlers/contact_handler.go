package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-site/internal/usecase/contact"
)

type ContactHandler struct {
	submitter *contact.Submitter
}

func NewContactHandler(submitter *contact.Submitter) *ContactHandler {
	return &ContactHandler{submitter: submitter}
}

// Submit answers 200 whenever the request is valid; delivery outcome is in
// the message text.
func (h *ContactHandler) Submit(c *gin.Context) {
	var in catalog.ContactInput
	if !bindJSON(c, &in) {
		return
	}

	msg, err := h.submitter.Submit(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, msg)
}
