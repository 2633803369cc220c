package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/models"
)

// FragmentHandler serves fragment extraction and retrieval endpoints.
type FragmentHandler struct {
	repo FragmentRepository
	log  *logrus.Logger
}

// NewFragmentHandler creates a FragmentHandler with the given service and logger.
func NewFragmentHandler(repo FragmentRepository, log *logrus.Logger) *FragmentHandler {
	return &FragmentHandler{repo: repo, log: log}
}

// Extract handles POST /api/molecules/:id/fragments.
func (h *FragmentHandler) Extract(c *gin.Context) {
	moleculeID := c.Param("id")
	if err := validatePathID(moleculeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.ExtractFragmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	f, err := h.repo.ExtractFragment(c.Request.Context(), moleculeID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMoleculeNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "molecule not found")
		case errors.Is(err, models.ErrRootOutOfRange),
			errors.Is(err, models.ErrRootExcluded),
			errors.Is(err, models.ErrNegativeSphere):
			respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("extracting fragment")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	status := http.StatusOK
	if req.Persist {
		status = http.StatusCreated
	}

	c.JSON(status, f)
}

// ListForMolecule handles GET /api/molecules/:id/fragments.
func (h *FragmentHandler) ListForMolecule(c *gin.Context) {
	moleculeID := c.Param("id")
	if err := validatePathID(moleculeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	fragments, hasMore, err := h.repo.ListFragments(c.Request.Context(), moleculeID, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing fragments")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"fragments": fragments, "has_more": hasMore})
}

// Get handles GET /api/fragments/:id.
func (h *FragmentHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	f, err := h.repo.GetFragment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrFragmentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "fragment not found")

			return
		}

		h.log.WithError(err).Error("getting fragment")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /api/fragments/:id.
func (h *FragmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteFragment(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrFragmentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "fragment not found")

			return
		}

		h.log.WithError(err).Error("deleting fragment")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}
