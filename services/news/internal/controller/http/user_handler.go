package http

import (
	"net/http"

	"newsboard/pkg/respond"
	"newsboard/services/news/internal/entity"

	"github.com/gin-gonic/gin"
)

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

// GetUser godoc
// @Summary      User profile
// @Tags         accounts
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /accounts/{username} [get]
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Change username or password
// @Description  Owner only; nothing is saved unless every supplied field is valid
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /accounts/{username} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), principal(c), c.Param("username"), entity.UserChanges{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete account
// @Description  Owner only; removes everything the account wrote
// @Tags         accounts
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /accounts/{username} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.DeleteUser(c.Request.Context(), principal(c), c.Param("username")); err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Authored godoc
// @Summary      News and comments written by a user
// @Tags         accounts
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {object}  map[string]interface{}
// @Router       /accounts/{username}/my [get]
func (h *Handler) Authored(c *gin.Context) {
	activity, err := h.userUseCase.Authored(c.Request.Context(), c.Param("username"))
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"my_news": activity.News, "my_comments": activity.Comments})
}

// Liked godoc
// @Summary      News and comments liked by a user
// @Tags         accounts
// @Produce      json
// @Param        username path string true "Username"
// @Success      200  {object}  map[string]interface{}
// @Router       /accounts/{username}/like [get]
func (h *Handler) Liked(c *gin.Context) {
	activity, err := h.userUseCase.Liked(c.Request.Context(), c.Param("username"))
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"like_news": activity.News, "like_comments": activity.Comments})
}
