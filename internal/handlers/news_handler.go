package handlers

import (
	"net/http"
	"strconv"

	"github.com/K227-arch/home-solutions/internal/models"
	"github.com/K227-arch/home-solutions/internal/services"
	"github.com/gin-gonic/gin"
)

// NewsHandler handles engagement feed HTTP requests
type NewsHandler struct {
	newsService services.NewsService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

// CreateNews handles POST /admin/news
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req models.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.newsService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save news post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "News item saved.",
		"post":    post,
	})
}

// ListNews handles GET /admin/news
func (h *NewsHandler) ListNews(c *gin.Context) {
	posts, err := h.newsService.List(c.Request.Context(), c.DefaultQuery("filter", models.NewsFilterAll))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list news posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetFeed handles GET /news, the public member-facing feed
func (h *NewsHandler) GetFeed(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "5"), 10, 64)

	posts, err := h.newsService.PublishedFeed(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}
	c.JSON(http.StatusOK, posts)
}
