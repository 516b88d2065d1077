package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/cache"
	"github.com/BruksfildServices01/barbershop-site/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-site/internal/dto"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
)

type SettingHandler struct {
	repo catalog.SettingRepository
	changes
}

func NewSettingHandler(repo catalog.SettingRepository, c cache.Cache, recorder audit.Recorder) *SettingHandler {
	return &SettingHandler{
		repo:    repo,
		changes: changes{cache: c, recorder: recorder, cacheKey: cache.KeySettings, entity: "setting"},
	}
}

// Get returns every stored key. Missing keys are left for clients to default.
func (h *SettingHandler) Get(c *gin.Context) {
	settings, err := cache.Load(c.Request.Context(), h.cache, cache.KeySettings, h.repo.All)
	if err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to load settings", err))
		return
	}
	httpresp.OK(c, settings)
}

// Update upserts key by key. Keys written before a failure stay written.
func (h *SettingHandler) Update(c *gin.Context) {
	var raw map[string]any
	if !bindJSON(c, &raw) {
		return
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			values[k] = val
		case nil:
			values[k] = ""
		default:
			httperr.BadRequest(c, "Setting values must be strings")
			return
		}
	}
	if err := catalog.ValidateSettings(values); err != nil {
		httperr.Respond(c, err)
		return
	}

	keys := make([]string, 0, len(values))
	for k, v := range values {
		if err := h.repo.Upsert(c.Request.Context(), k, v); err != nil {
			h.record(c, audit.ActionUpdate, 0, gin.H{"keys": keys, "failed": k})
			httperr.Respond(c, httperr.ErrStore("Failed to update settings", err))
			return
		}
		keys = append(keys, k)
	}

	if len(keys) > 0 {
		h.record(c, audit.ActionUpdate, 0, gin.H{"keys": keys})
	}
	httpresp.OK(c, dto.SettingsUpdateResponse{
		Message:  "Settings updated successfully",
		Settings: values,
	})
}
