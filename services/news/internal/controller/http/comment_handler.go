package http

import (
	"net/http"

	"newsboard/pkg/respond"
	"newsboard/services/news/internal/entity"

	"github.com/gin-gonic/gin"
)

type CommentRequest struct {
	Content string `json:"content"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

// ListComments godoc
// @Summary      Comments of a news item
// @Tags         comments
// @Produce      json
// @Param        newsId path string true "News ID"
// @Success      200  {array}   entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId}/comment [get]
func (h *Handler) ListComments(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}
	comments, err := h.commentUseCase.ListComments(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary      Comment on a news item
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        newsId path string true "News ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /news/{newsId}/comment [post]
func (h *Handler) CreateComment(c *gin.Context) {
	id, ok := h.newsID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), principal(c), id, req.Content)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetComment godoc
// @Summary      Comment detail
// @Tags         comments
// @Produce      json
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /news/comment/{commentId} [get]
func (h *Handler) GetComment(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}
	comment, err := h.commentUseCase.GetComment(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        request body UpdateCommentRequest true "New content"
// @Success      200  {object}  entity.Comment
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /news/comment/{commentId} [put]
func (h *Handler) UpdateComment(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), principal(c), id,
		entity.CommentChanges{Content: req.Content})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/comment/{commentId} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), principal(c), id); err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchComments godoc
// @Summary      Search comments
// @Description  Case-insensitive match on content or author username
// @Tags         comments
// @Produce      json
// @Param        search path string true "Search term"
// @Success      200  {array}   entity.Comment
// @Router       /news/comment/search/{search} [get]
func (h *Handler) SearchComments(c *gin.Context) {
	comments, err := h.commentUseCase.SearchComments(c.Request.Context(), c.Param("search"))
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CommentLikers godoc
// @Summary      Who liked a comment
// @Tags         likes
// @Produce      json
// @Param        commentId path string true "Comment ID"
// @Success      200  {object}  likersResponse
// @Router       /news/comment/{commentId}/like [get]
func (h *Handler) CommentLikers(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}
	usernames, err := h.likeUseCase.CommentLikers(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, likersResponse{LikeUsers: usernames})
}

// LikeComment godoc
// @Summary      Like a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /news/comment/{commentId}/like [post]
func (h *Handler) LikeComment(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}
	if err := h.likeUseCase.LikeComment(c.Request.Context(), principal(c), id); err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": "You liked the comment."})
}

// UnlikeComment godoc
// @Summary      Withdraw a like from a comment
// @Tags         likes
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /news/comment/{commentId}/like [delete]
func (h *Handler) UnlikeComment(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}
	if err := h.likeUseCase.UnlikeComment(c.Request.Context(), principal(c), id); err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
