package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cabindev/sdnfutsal/internal/core/ports/services"
	"github.com/cabindev/sdnfutsal/internal/dto"
	"github.com/cabindev/sdnfutsal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles the Google sign-in code exchange.
type GoogleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		oauthService: os,
		userService:  us,
		tokenService: ts,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in routes.
func registerGoogleOAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)

	auth := rg.Group("/api/v1/auth")
	{
		auth.GET("/google/url", h.AuthCodeURL)
		auth.POST("/google/exchange", h.ExchangeCode)
	}
}

// AuthCodeURL godoc
// @Summary Get the Google consent page URL
// @Description Returns the Google consent page URL and the state token the caller must verify on callback.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleAuthURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/url [get]
func (h *GoogleOAuthHandler) AuthCodeURL(c *gin.Context) {
	url, state, err := h.oauthService.AuthCodeURL(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build Google consent URL", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Google sign-in is not available"})
		return
	}

	c.JSON(http.StatusOK, dto.GoogleAuthURLResponse{URL: url, State: state})
}

// ExchangeCode godoc
// @Summary Exchange Google authorization code
// @Description Exchanges a Google authorization code for an application JWT, creating the account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Authorization Code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange [post]
func (h *GoogleOAuthHandler) ExchangeCode(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	info, err := h.oauthService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), info.ProviderUserID, info.Email, info.FirstName, info.LastName, info.Picture)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to resolve google user", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Unable to sign in with this Google account"})
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}
