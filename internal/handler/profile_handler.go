package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"anoa.com/newshub/internal/model"
	"anoa.com/newshub/internal/service"
	"anoa.com/newshub/pkg/apperror"
	"anoa.com/newshub/pkg/response"
	"anoa.com/newshub/pkg/validator"
)

type ProfileHandler struct {
	profileService service.ProfileService
	newsService    service.NewsService
}

func NewProfileHandler(profileService service.ProfileService, newsService service.NewsService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, newsService: newsService}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := response.GetUserID(c)

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	top, err := h.profileService.TopInterests(c.Request.Context(), userID, 10)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"user_id":       profile.UserID,
		"top_interests": top,
		"articles_read": len(profile.ReadHistory),
		"last_updated":  profile.LastUpdated,
	})
}

type setInterestsRequest struct {
	Topics []string `json:"topics" binding:"required,min=1,dive,min=1"`
}

func (h *ProfileHandler) SetInterests(c *gin.Context) {
	var req setInterestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	userID := response.GetUserID(c)
	profile, err := h.profileService.SetInterests(c.Request.Context(), userID, req.Topics)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"user_id":   profile.UserID,
		"interests": profile.Interests,
	})
}

type learnRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func (r learnRequest) toArticle() model.Article {
	return model.Article{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		PublishedAt: r.PublishedAt,
	}
}

func (h *ProfileHandler) LearnFromArticle(c *gin.Context) {
	var req learnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, validator.FormatValidationError(err)))
		return
	}

	userID := response.GetUserID(c)
	profile, err := h.profileService.LearnFromArticle(c.Request.Context(), userID, req.toArticle())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"user_id":       profile.UserID,
		"articles_read": len(profile.ReadHistory),
	})
}

// GetRecommendations re-ranks the current trending pool for the caller.
func (h *ProfileHandler) GetRecommendations(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	// Pull a broad pool so personal ranking has something to choose from.
	pool, _, err := h.newsService.Trending(c.Request.Context(), limit*3)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	userID := response.GetUserID(c)
	recommended, err := h.profileService.Recommend(c.Request.Context(), userID, pool, limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"user_id":  userID,
		"count":    len(recommended),
		"articles": recommended,
	})
}
