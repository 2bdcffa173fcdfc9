package http

import (
	"net/http"

	"newsboard/pkg/logger"
	"newsboard/pkg/respond"
	"newsboard/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type AccessResponse struct {
	Access string `json:"access"`
}

// RegisterRoutes mounts signup, login, logout and token refresh on api.
func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	accounts := api.Group("/accounts")
	{
		accounts.POST("", h.Register)
		accounts.POST("/login", h.Login)
		accounts.POST("/logout", h.Logout)
		accounts.POST("/token/refresh", h.Refresh)
	}
}

// Register godoc
// @Summary      Sign up
// @Description  Create an account with a username, a password and an optional email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /accounts [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Obtain a token pair
// @Description  Exchange username and password for access and refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  jwt.TokenPair
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /accounts/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	pair, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// Refresh godoc
// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200  {object}  AccessResponse
// @Failure      401  {object}  map[string]string
// @Router       /accounts/token/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	access, err := h.authUseCase.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AccessResponse{Access: access})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke a refresh token until it expires
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /accounts/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), req.Refresh); err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": "Logged out."})
}
