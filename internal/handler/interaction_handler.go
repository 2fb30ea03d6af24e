package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"anoa.com/newshub/internal/service"
	"anoa.com/newshub/pkg/apperror"
	"anoa.com/newshub/pkg/response"
	"anoa.com/newshub/pkg/validator"
)

type InteractionHandler struct {
	interactionService service.InteractionService
}

func NewInteractionHandler(interactionService service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

func (h *InteractionHandler) Track(c *gin.Context) {
	var input service.TrackInteractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ResponseError(c, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	userID := response.GetUserID(c)
	if err := h.interactionService.Track(c.Request.Context(), userID, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "interaction recorded",
	})
}

func (h *InteractionHandler) GetCategoryScores(c *gin.Context) {
	userID := response.GetUserID(c)

	scores, err := h.interactionService.CategoryScores(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	limit := 3
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	recommended, err := h.interactionService.RecommendedCategories(c.Request.Context(), userID, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"user_id":                userID,
		"category_scores":        scores,
		"recommended_categories": recommended,
	})
}
