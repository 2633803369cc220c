package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/models"
)

// SpectrumHandler serves spectrum storage and peak picking endpoints.
type SpectrumHandler struct {
	repo SpectrumRepository
	log  *logrus.Logger
}

// NewSpectrumHandler creates a SpectrumHandler with the given service and logger.
func NewSpectrumHandler(repo SpectrumRepository, log *logrus.Logger) *SpectrumHandler {
	return &SpectrumHandler{repo: repo, log: log}
}

// Create handles POST /api/molecules/:id/spectra.
func (h *SpectrumHandler) Create(c *gin.Context) {
	moleculeID := c.Param("id")
	if err := validatePathID(moleculeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.CreateSpectrumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	sp, err := h.repo.CreateSpectrum(c.Request.Context(), moleculeID, req)
	if err != nil {
		if errors.Is(err, models.ErrMoleculeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "molecule not found")

			return
		}

		h.log.WithError(err).Error("creating spectrum")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, sp)
}

// ListForMolecule handles GET /api/molecules/:id/spectra.
func (h *SpectrumHandler) ListForMolecule(c *gin.Context) {
	moleculeID := c.Param("id")
	if err := validatePathID(moleculeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	spectra, hasMore, err := h.repo.ListSpectra(c.Request.Context(), moleculeID, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing spectra")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"spectra": spectra, "has_more": hasMore})
}

// Get handles GET /api/spectra/:id.
func (h *SpectrumHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	sp, err := h.repo.GetSpectrum(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrSpectrumNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "spectrum not found")

			return
		}

		h.log.WithError(err).Error("getting spectrum")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, sp)
}

// Pick handles POST /api/spectra/:id/pick.
func (h *SpectrumHandler) Pick(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.PickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	signals, err := h.repo.PickSignals(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrSpectrumNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "spectrum not found")

			return
		}

		h.log.WithError(err).Error("picking signals")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"signals": signals})
}

// Delete handles DELETE /api/spectra/:id.
func (h *SpectrumHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteSpectrum(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrSpectrumNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "spectrum not found")

			return
		}

		h.log.WithError(err).Error("deleting spectrum")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}
