package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Treatment suggestions for an acne type
// @Description Returns skincare and lifestyle suggestions for the given classification label
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param acneType path string true "Classification label, for example Blackheads_Moderate"
// @Success 200 {object} successResponseBody "Treatment suggestions"
// @Router /suggestions/{acneType} [get]
func (h *Handler) getSuggestions(c *gin.Context) {
	acneType := c.Param("acneType")

	suggestions := h.services.Suggestion.GetByAcneType(acneType)

	successResponse(c, http.StatusOK, suggestions)
}
