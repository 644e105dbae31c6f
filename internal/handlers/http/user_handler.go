package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
	"github.com/viajamais/viajamais-backend/internal/handlers/dto"
	"github.com/viajamais/viajamais-backend/internal/handlers/middleware"
	"github.com/viajamais/viajamais-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	authz       *services.AuthorizationService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, authz *services.AuthorizationService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		authz:       authz,
		logger:      logger,
	}
}

// CreateUser cria um novo usuário (cadastro aberto para role USER;
// roles de equipe só via admin)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	if req.Role != string(entities.RoleUser) {
		claims := middleware.ClaimsFromContext(c)
		if !h.authz.CanModifyResource(c.Request.Context(), claims, "CREATE", "user") {
			c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
			return
		}
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Document: req.Document,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID (próprio usuário ou equipe)
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanAccessUserData(c.Request.Context(), claims, id) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários paginados (somente admin)
func (h *UserHandler) ListUsers(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "LIST", "user") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	filters := repositories.UserFilters{
		Name:     c.Query("name"),
		Page:     queryInt(c, "page", 0),
		PageSize: queryInt(c, "page_size", 10),
	}

	if roleParam := c.Query("role"); roleParam != "" {
		role, err := entities.ParseRole(roleParam)
		if err != nil {
			bindingErrorResponse(c, err)
			return
		}
		filters.Role = &role
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateUser atualiza um usuário (próprio usuário ou admin)
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanUpdateUser(c.Request.Context(), claims, id) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário (somente admin)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "DELETE", "user") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// queryInt lê um parâmetro numérico da query string com default
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
