package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/dto"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List accepts action, entity, from and to (YYYY-MM-DD, inclusive) filters
// plus page and limit. Malformed values fall back to defaults.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}
	if from, err := time.Parse(time.DateOnly, c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse(time.DateOnly, c.Query("to")); err == nil {
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, httperr.ErrStore("Failed to load audit logs", err))
		return
	}

	httpresp.OK(c, dto.AuditLogPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
