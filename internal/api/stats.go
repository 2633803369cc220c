package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler serves the storage statistics endpoint.
type StatsHandler struct {
	repo StatsRepository
	log  *logrus.Logger
}

// NewStatsHandler creates a StatsHandler with the given service and logger.
func NewStatsHandler(repo StatsRepository, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{repo: repo, log: log}
}

// GetStats handles GET /api/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("collecting stats")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, stats)
}
