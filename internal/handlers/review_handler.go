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

type ReviewHandler struct {
	repo catalog.ReviewRepository
	changes
}

func NewReviewHandler(repo catalog.ReviewRepository, c cache.Cache, recorder audit.Recorder) *ReviewHandler {
	return &ReviewHandler{
		repo:    repo,
		changes: changes{cache: c, recorder: recorder, cacheKey: cache.KeyReviews, entity: "review"},
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := cache.Load(c.Request.Context(), h.cache, cache.KeyReviews, h.repo.List)
	if err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to load reviews", err))
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var in catalog.ReviewInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	r := in.NewReview()
	if err := h.repo.Create(c.Request.Context(), r); err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to create review", err))
		return
	}

	h.record(c, audit.ActionCreate, r.ID, nil)
	c.JSON(http.StatusCreated, r)
}

// Update replaces the whole review; every required field must be sent.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in catalog.ReviewInput
	if !bindJSON(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		httperr.Respond(c, err)
		return
	}

	r, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, reviewErr(err))
		return
	}

	catalog.ReplaceUpdateReview(r, in)
	if err := h.repo.Save(c.Request.Context(), r); err != nil {
		httperr.Respond(c, reviewErr(err))
		return
	}

	h.record(c, audit.ActionUpdate, r.ID, nil)
	httpresp.OK(c, r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, reviewErr(err))
		return
	}

	h.record(c, audit.ActionDelete, id, nil)
	httpresp.Message(c, "Review deleted successfully")
}

func reviewErr(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return httperr.ErrNotFound("Review not found")
	}
	return httperr.ErrStore("Failed to access review", err)
}

