package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/handlers/dto"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/auth"
	"github.com/viajamais/viajamais-backend/internal/services"
)

// AuthHandler lida com autenticação (emissão de tokens)
type AuthHandler struct {
	userService *services.UserService
	tokens      *auth.TokenManager
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(userService *services.UserService, tokens *auth.TokenManager, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

// Login autentica email e senha e emite um token de acesso
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}
		respondError(c, h.logger, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
