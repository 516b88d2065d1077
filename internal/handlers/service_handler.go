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

type ServiceHandler struct {
	repo catalog.ServiceRepository
	changes
}

func NewServiceHandler(repo catalog.ServiceRepository, c cache.Cache, recorder audit.Recorder) *ServiceHandler {
	return &ServiceHandler{
		repo:    repo,
		changes: changes{cache: c, recorder: recorder, cacheKey: cache.KeyServices, entity: "service"},
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := cache.Load(c.Request.Context(), h.cache, cache.KeyServices, h.repo.List)
	if err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to load services", err))
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var in catalog.ServiceInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	s := in.NewService()
	if err := h.repo.Create(c.Request.Context(), s); err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to create service", err))
		return
	}

	h.record(c, audit.ActionCreate, s.ID, nil)
	c.JSON(http.StatusCreated, s)
}

// Update replaces the whole service; every required field must be sent.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in catalog.ServiceInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, serviceErr(err))
		return
	}

	catalog.ReplaceUpdate(s, in)
	if err := h.repo.Save(c.Request.Context(), s); err != nil {
		httperr.Respond(c, serviceErr(err))
		return
	}

	h.record(c, audit.ActionUpdate, s.ID, nil)
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, serviceErr(err))
		return
	}

	h.record(c, audit.ActionDelete, id, nil)
	httpresp.Message(c, "Service deleted successfully")
}

func serviceErr(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return httperr.ErrNotFound("Service not found")
	}
	return httperr.ErrStore("Failed to access service", err)
}

