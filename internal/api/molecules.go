package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/spectrakit/fragmentor/internal/models"
)

// MoleculeHandler serves molecule CRUD endpoints.
type MoleculeHandler struct {
	repo MoleculeRepository
	log  *logrus.Logger
}

// NewMoleculeHandler creates a MoleculeHandler with the given service and logger.
func NewMoleculeHandler(repo MoleculeRepository, log *logrus.Logger) *MoleculeHandler {
	return &MoleculeHandler{repo: repo, log: log}
}

// List handles GET /api/molecules.
func (h *MoleculeHandler) List(c *gin.Context) {
	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	offset := parseOffset(c.DefaultQuery("offset", "0"))

	molecules, hasMore, err := h.repo.ListMolecules(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing molecules")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"molecules": molecules, "has_more": hasMore})
}

// Get handles GET /api/molecules/:id.
func (h *MoleculeHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	m, err := h.repo.GetMolecule(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrMoleculeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "molecule not found")

			return
		}

		h.log.WithError(err).Error("getting molecule")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, m)
}

// Create handles POST /api/molecules.
func (h *MoleculeHandler) Create(c *gin.Context) {
	var req models.CreateMoleculeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	m, err := h.repo.CreateMolecule(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "molecule with this ID already exists")

			return
		}

		h.log.WithError(err).Error("creating molecule")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, m)
}

// Delete handles DELETE /api/molecules/:id.
func (h *MoleculeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteMolecule(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrMoleculeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "molecule not found")

			return
		}

		h.log.WithError(err).Error("deleting molecule")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.Status(http.StatusNoContent)
}
