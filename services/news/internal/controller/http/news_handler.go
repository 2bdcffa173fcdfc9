package http

import (
	"fmt"
	"net/http"

	"newsboard/pkg/respond"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CreateNewsRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type UpdateNewsRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	URL     *string `json:"url"`
}

// ListNews godoc
// @Summary      List news
// @Description  All news items in the order they were posted
// @Tags         news
// @Produce      json
// @Success      200  {array}   entity.News
// @Router       /news [get]
func (h *Handler) ListNews(c *gin.Context) {
	h.listNews(c, usecase.OrderStorage)
}

// LatestNews godoc
// @Summary      Latest news
// @Description  News ordered by creation time, newest first
// @Tags         news
// @Produce      json
// @Success      200  {array}   entity.News
// @Router       /news/latest [get]
func (h *Handler) LatestNews(c *gin.Context) {
	h.listNews(c, usecase.OrderRecency)
}

// PopularNews godoc
// @Summary      Most liked news
// @Description  News ordered by like count, then newest first
// @Tags         news
// @Produce      json
// @Success      200  {array}   entity.News
// @Router       /news/liked [get]
func (h *Handler) PopularNews(c *gin.Context) {
	h.listNews(c, usecase.OrderPopularity)
}

// MostCommentedNews godoc
// @Summary      Most commented news
// @Description  News ordered by comment count, then newest first
// @Tags         news
// @Produce      json
// @Success      200  {array}   newsWithCount
// @Router       /news/comment [get]
func (h *Handler) MostCommentedNews(c *gin.Context) {
	items, err := h.newsUseCase.ListNews(c.Request.Context(), usecase.OrderEngagement)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	out := make([]newsWithCount, len(items))
	for i, n := range items {
		out[i] = newsWithCount{News: n, CommentsCount: n.CommentCount}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listNews(c *gin.Context, by usecase.Ordering) {
	items, err := h.newsUseCase.ListNews(c.Request.Context(), by)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SearchNews godoc
// @Summary      Search news
// @Description  Case-insensitive match on title, content, url or author username
// @Tags         news
// @Produce      json
// @Param        search path string true "Search term"
// @Success      200  {array}   entity.News
// @Router       /news/search/{search} [get]
func (h *Handler) SearchNews(c *gin.Context) {
	items, err := h.newsUseCase.SearchNews(c.Request.Context(), c.Param("search"))
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateNews godoc
// @Summary      Post news
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateNewsRequest true "News data"
// @Success      201  {object}  entity.News
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /news [post]
func (h *Handler) CreateNews(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	news, err := h.newsUseCase.CreateNews(c.Request.Context(), principal(c), usecase.NewsInput{
		Title:   req.Title,
		Content: req.Content,
		URL:     req.URL,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, news)
}

// GetNews godoc
// @Summary      News detail
// @Description  A news item with its comments
// @Tags         news
// @Produce      json
// @Param        newsId path string true "News ID"
// @Success      200  {object}  newsDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId} [get]
func (h *Handler) GetNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	detail, err := h.newsUseCase.GetNews(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newsDetailResponse{
		News:          detail.News,
		Comments:      detail.Comments,
		CommentsCount: detail.News.CommentCount,
	})
}

// UpdateNews godoc
// @Summary      Edit news
// @Description  Partial update, author only
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        newsId path string true "News ID"
// @Param        request body UpdateNewsRequest true "Fields to change"
// @Success      200  {object}  entity.News
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId} [put]
func (h *Handler) UpdateNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	news, err := h.newsUseCase.UpdateNews(c.Request.Context(), principal(c), id, entity.NewsChanges{
		Title:   req.Title,
		Content: req.Content,
		URL:     req.URL,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

// DeleteNews godoc
// @Summary      Delete news
// @Description  Author only; removes its comments and likes too
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        newsId path string true "News ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId} [delete]
func (h *Handler) DeleteNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}
	if err := h.newsUseCase.DeleteNews(c.Request.Context(), principal(c), id); err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pk": fmt.Sprintf("%s is deleted.", id)})
}

// NewsLikers godoc
// @Summary      Who liked a news item
// @Tags         likes
// @Produce      json
// @Param        newsId path string true "News ID"
// @Success      200  {object}  likersResponse
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId}/like [get]
func (h *Handler) NewsLikers(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}
	usernames, err := h.likeUseCase.NewsLikers(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, likersResponse{LikeUsers: usernames})
}

// LikeNews godoc
// @Summary      Like a news item
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        newsId path string true "News ID"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId}/like [post]
func (h *Handler) LikeNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}
	if err := h.likeUseCase.LikeNews(c.Request.Context(), principal(c), id); err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": "You liked the news."})
}

// UnlikeNews godoc
// @Summary      Withdraw a like from a news item
// @Tags         likes
// @Security     BearerAuth
// @Param        newsId path string true "News ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId}/like [delete]
func (h *Handler) UnlikeNews(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}
	if err := h.likeUseCase.UnlikeNews(c.Request.Context(), principal(c), id); err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
