package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acnescan/internal/domain"
)

type directoryResponse struct {
	Data       []domain.Dermatologist `json:"data"`
	MatchCount int                    `json:"match_count"`
	TotalCount int                    `json:"total_count"`
}

// @Summary Browse the dermatologist directory
// @Description Returns the directory filtered by location and availability mode, sorted by the requested key
// @Tags Dermatologists
// @Accept json
// @Produce json
// @Param location query string false "Location query, city, state name or two-letter state code"
// @Param availability query string false "Availability mode: all, telehealth or in-person (default all)"
// @Param sort_by query string false "Sort key: name or location (default name)"
// @Success 200 {object} directoryResponse "Matching entries plus the directory total"
// @Failure 400 {object} errorResponseBody "Unknown availability mode"
// @Failure 500 {object} errorResponseBody "Internal server error"
// @Router /dermatologists [get]
func (h *Handler) getDermatologists(c *gin.Context) {
	filter := domain.DefaultDirectoryFilter()
	filter.Location = c.Query("location")

	if mode := c.Query("availability"); mode != "" {
		filter.Availability = domain.AvailabilityMode(mode)
		if !filter.Availability.IsValid() {
			badRequestResponse(c, "unknown availability mode")
			return
		}
	}

	if sortBy := c.Query("sort_by"); sortBy != "" {
		filter.SortBy = domain.DirectorySortKey(sortBy)
	}

	dermatologists, total, err := h.services.Dermatologist.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list dermatologists", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, directoryResponse{
		Data:       dermatologists,
		MatchCount: len(dermatologists),
		TotalCount: total,
	})
}

// @Summary Get dermatologist by ID
// @Description Returns one directory entry
// @Tags Dermatologists
// @Accept json
// @Produce json
// @Param id path int true "Dermatologist ID"
// @Success 200 {object} domain.Dermatologist "Directory entry"
// @Failure 400 {object} errorResponseBody "Invalid ID format"
// @Failure 404 {object} errorResponseBody "Dermatologist not found"
// @Router /dermatologists/{id} [get]
func (h *Handler) getDermatologistByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Warn("invalid ID format", zap.Error(err))
		badRequestResponse(c, "invalid ID format")
		return
	}

	dermatologist, err := h.services.Dermatologist.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get dermatologist", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, "dermatologist not found")
		return
	}

	successResponse(c, http.StatusOK, dermatologist)
}
