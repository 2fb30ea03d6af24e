package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"anoa.com/newshub/internal/scrape"
	"anoa.com/newshub/internal/service"
	"anoa.com/newshub/pkg/apperror"
	"anoa.com/newshub/pkg/response"
)

type NewsHandler struct {
	newsService     service.NewsService
	defaultPageSize int
	maxPageSize     int
}

func NewNewsHandler(newsService service.NewsService, defaultPageSize, maxPageSize int) *NewsHandler {
	return &NewsHandler{
		newsService:     newsService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

func (h *NewsHandler) pageSize(c *gin.Context) int {
	size := h.defaultPageSize
	if raw := c.Query("pageSize"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			size = parsed
		}
	}
	if size > h.maxPageSize {
		size = h.maxPageSize
	}
	return size
}

func (h *NewsHandler) GetCategory(c *gin.Context) {
	category := strings.ToLower(c.Param("category"))
	if category == "" {
		response.ResponseError(c, fmt.Errorf("%w: category is required", apperror.ErrBadRequest))
		return
	}

	articles, sourceTag, err := h.newsService.GetCategory(c.Request.Context(), category, h.pageSize(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"source":   sourceTag,
		"count":    len(articles),
		"articles": articles,
	})
}

func (h *NewsHandler) GetTrending(c *gin.Context) {
	articles, sourceTag, err := h.newsService.Trending(c.Request.Context(), h.pageSize(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"source":   sourceTag,
		"count":    len(articles),
		"articles": articles,
	})
}

func (h *NewsHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.ResponseError(c, fmt.Errorf("%w: query parameter q is required", apperror.ErrBadRequest))
		return
	}

	articles, err := h.newsService.Search(c.Request.Context(), query, h.pageSize(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"query":    query,
		"count":    len(articles),
		"articles": articles,
	})
}

func (h *NewsHandler) ForceRefresh(c *gin.Context) {
	if err := h.newsService.ForceRefresh(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "cache cleared and master pool refreshed",
	})
}

func (h *NewsHandler) CacheStatus(c *gin.Context) {
	report, err := h.newsService.CacheStatus(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cache":   report,
	})
}

// GetContent extracts the readable body of an article page, for reader mode.
func (h *NewsHandler) GetContent(c *gin.Context) {
	articleURL := c.Query("url")
	if articleURL == "" {
		response.ResponseError(c, fmt.Errorf("%w: query parameter url is required", apperror.ErrBadRequest))
		return
	}

	readout, err := scrape.Extract(articleURL)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": readout,
	})
}
