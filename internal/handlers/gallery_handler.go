package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/cache"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-site/internal/usecase/gallery"
)

type GalleryHandler struct {
	gallery  *gallery.Gallery
	maxBytes int64
	changes
}

func NewGalleryHandler(uc *gallery.Gallery, maxBytes int64, c cache.Cache, recorder audit.Recorder) *GalleryHandler {
	return &GalleryHandler{
		gallery:  uc,
		maxBytes: maxBytes,
		changes:  changes{cache: c, recorder: recorder, cacheKey: cache.KeyGallery, entity: "gallery"},
	}
}

func (h *GalleryHandler) List(c *gin.Context) {
	items, err := cache.Load(c.Request.Context(), h.cache, cache.KeyGallery, h.gallery.List)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *GalleryHandler) Upload(c *gin.Context) {
	up, err := readUpload(c, "image", h.maxBytes, "No image file provided")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	item, err := h.gallery.Upload(c.Request.Context(), up)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.record(c, audit.ActionUpload, item.ID, gin.H{"path": item.ImageURL})
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.gallery.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.record(c, audit.ActionDelete, id, gin.H{"path": item.ImageURL})
	httpresp.Message(c, "Image deleted successfully")
}
