package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// HealthStatus is the body of /health and of a successful /ready.
type HealthStatus struct {
	Status   string `json:"status" example:"ok"`
	Version  string `json:"version" example:"0.1.0"`
	UptimeS  int64  `json:"uptime" example:"42"`
	Database string `json:"db,omitempty" example:"up"`
}

type HealthHandler struct {
	db      *gorm.DB
	started time.Time
	version string
}

func NewHealthHandler(db *gorm.DB, started time.Time, version string) *HealthHandler {
	return &HealthHandler{db: db, started: started, version: version}
}

func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health reports that the process is up. It never touches the database.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.status("ok", ""))
}

// Ready answers 200 once the book store can be reached and 503 while it
// cannot.
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("no sql handle for readiness check")
		writeError(c, http.StatusInternalServerError, "database handle unavailable")
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("database not reachable")
		writeError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	c.JSON(http.StatusOK, h.status("ready", "up"))
}

func (h *HealthHandler) status(state, database string) HealthStatus {
	return HealthStatus{
		Status:   state,
		Version:  h.version,
		UptimeS:  int64(time.Since(h.started).Seconds()),
		Database: database,
	}
}
