package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/cache"
	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/dto"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-site/internal/usecase/master"
)

type MasterHandler struct {
	masters  *master.Masters
	maxBytes int64
	changes
}

func NewMasterHandler(uc *master.Masters, maxBytes int64, c cache.Cache, recorder audit.Recorder) *MasterHandler {
	return &MasterHandler{
		masters:  uc,
		maxBytes: maxBytes,
		changes:  changes{cache: c, recorder: recorder, cacheKey: cache.KeyMasters, entity: "master"},
	}
}

func (h *MasterHandler) List(c *gin.Context) {
	masters, err := cache.Load(c.Request.Context(), h.cache, cache.KeyMasters, h.masters.List)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, masters)
}

func (h *MasterHandler) Create(c *gin.Context) {
	var in catalog.MasterInput
	if !bindJSON(c, &in) {
		return
	}

	m, err := h.masters.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.record(c, audit.ActionCreate, m.ID, nil)
	c.JSON(http.StatusCreated, m)
}

// Update keeps stored values for every field left out of the body.
func (h *MasterHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in catalog.MasterInput
	if !bindJSON(c, &in) {
		return
	}

	m, err := h.masters.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.record(c, audit.ActionUpdate, m.ID, nil)
	httpresp.OK(c, m)
}

func (h *MasterHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.masters.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.record(c, audit.ActionDelete, id, nil)
	httpresp.Message(c, "Master deleted successfully")
}

// UploadPhoto only stores the file; no master row is touched.
func (h *MasterHandler) UploadPhoto(c *gin.Context) {
	up, err := readUpload(c, "photo", h.maxBytes, "No file uploaded")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	path, err := h.masters.UploadPhoto(c.Request.Context(), up)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	photo := changes{recorder: h.recorder, entity: "master_photo"}
	photo.record(c, audit.ActionUpload, 0, gin.H{"path": path})
	httpresp.OK(c, dto.UploadResponse{Success: true, Path: path})
}
