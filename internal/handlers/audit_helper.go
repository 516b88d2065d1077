package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/audit"
	"github.com/BruksfildServices01/barbershop-site/internal/cache"
	"github.com/BruksfildServices01/barbershop-site/internal/middleware"
)

// changes is embedded by handlers whose writes must invalidate a cached
// public listing and leave an audit entry.
type changes struct {
	cache    cache.Cache
	recorder audit.Recorder
	cacheKey string
	entity   string
}

func (ch changes) record(c *gin.Context, action string, id uint, meta any) {
	if ch.cacheKey != "" {
		cache.Invalidate(c.Request.Context(), ch.cache, ch.cacheKey)
	}

	ev := audit.Event{
		Action:   action,
		Entity:   ch.entity,
		Metadata: meta,
	}
	if id != 0 {
		ev.EntityID = &id
	}
	if who := middleware.CurrentIdentity(c); who != nil {
		userID := who.UserID
		ev.UserID = &userID
		ev.Username = who.Username
	}
	ch.recorder.Dispatch(ev)
}
