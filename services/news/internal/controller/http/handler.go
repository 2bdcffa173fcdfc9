package http

import (
	"newsboard/pkg/apperr"
	"newsboard/pkg/authz"
	"newsboard/pkg/logger"
	"newsboard/pkg/middleware"
	"newsboard/pkg/respond"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "principal"

type Handler struct {
	newsUseCase    usecase.NewsUseCase
	commentUseCase usecase.CommentUseCase
	likeUseCase    usecase.LikeUseCase
	userUseCase    usecase.UserUseCase
	logger         *logger.Logger
}

func NewHandler(
	newsUseCase usecase.NewsUseCase,
	commentUseCase usecase.CommentUseCase,
	likeUseCase usecase.LikeUseCase,
	userUseCase usecase.UserUseCase,
	logger *logger.Logger,
) *Handler {
	return &Handler{
		newsUseCase:    newsUseCase,
		commentUseCase: commentUseCase,
		likeUseCase:    likeUseCase,
		userUseCase:    userUseCase,
		logger:         logger,
	}
}

// ResolvePrincipal loads the user named by the verified token. It must run
// after middleware.AuthMiddleware.
func (h *Handler) ResolvePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.userUseCase.ResolvePrincipal(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			respond.Error(c, h.logger, err)
			c.Abort()
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

func principal(c *gin.Context) *authz.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*authz.Principal)
	return p
}

// pathID reads a uuid path parameter. Anything that is not a canonical
// uuid cannot name a row, so it answers 404 without touching storage.
func (h *Handler) pathID(c *gin.Context, param, notFound string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		respond.Error(c, h.logger, apperr.NotFound(notFound))
		return "", false
	}
	return id, true
}

func (h *Handler) newsID(c *gin.Context) (string, bool) {
	return h.pathID(c, "newsId", usecase.NewsNotFound)
}

func (h *Handler) commentID(c *gin.Context) (string, bool) {
	return h.pathID(c, "commentId", usecase.CommentNotFound)
}

type newsWithCount struct {
	*entity.News
	CommentsCount int64 `json:"comments_count"`
}

type newsDetailResponse struct {
	*entity.News
	Comments      []*entity.Comment `json:"comments"`
	CommentsCount int64             `json:"comments_count"`
}

type likersResponse struct {
	LikeUsers []string `json:"like_users"`
}
