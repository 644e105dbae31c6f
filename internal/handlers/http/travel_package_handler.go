package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
	"github.com/viajamais/viajamais-backend/internal/handlers/dto"
	"github.com/viajamais/viajamais-backend/internal/handlers/middleware"
	"github.com/viajamais/viajamais-backend/internal/services"
)

// TravelPackageHandler lida com requisições HTTP de pacotes de viagem.
// Leitura é pública (vitrine); escrita é administrativa.
type TravelPackageHandler struct {
	packageService *services.TravelPackageService
	authz          *services.AuthorizationService
	logger         ports.Logger
}

// NewTravelPackageHandler cria um novo TravelPackageHandler
func NewTravelPackageHandler(
	packageService *services.TravelPackageService,
	authz *services.AuthorizationService,
	logger ports.Logger,
) *TravelPackageHandler {
	return &TravelPackageHandler{
		packageService: packageService,
		authz:          authz,
		logger:         logger,
	}
}

// CreatePackage cria um pacote de viagem (somente admin)
func (h *TravelPackageHandler) CreatePackage(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "CREATE", "travel_package") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	var req dto.CreateTravelPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	pkg, err := h.packageService.Create(c.Request.Context(), services.CreateTravelPackageInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		MaxPeople:   req.MaxPeople,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTravelPackageResponse(pkg))
}

// GetPackage busca um pacote por ID
func (h *TravelPackageHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	pkg, err := h.packageService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelPackageResponse(pkg))
}

// ListPackages lista pacotes paginados, com filtro por título
func (h *TravelPackageHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.packageService.List(c.Request.Context(), repositories.TravelPackageFilters{
		Title:    c.Query("title"),
		Page:     queryInt(c, "page", 0),
		PageSize: queryInt(c, "page_size", 10),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelPackageResponses(pkgs))
}

// UpdatePackage atualiza um pacote (somente admin)
func (h *TravelPackageHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "UPDATE", "travel_package") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	var req dto.UpdateTravelPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	pkg, err := h.packageService.Update(c.Request.Context(), id, services.UpdateTravelPackageInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		MaxPeople:   req.MaxPeople,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelPackageResponse(pkg))
}

// DeletePackage remove um pacote (somente admin)
func (h *TravelPackageHandler) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "DELETE", "travel_package") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	if err := h.packageService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddPackageDate cria uma data reservável do pacote (somente admin)
func (h *TravelPackageHandler) AddPackageDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "UPDATE", "travel_package") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	var req dto.AddPackageDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	date, err := h.packageService.AddDate(c.Request.Context(), id, services.AddPackageDateInput{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		QtdAvailable: req.QtdAvailable,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPackageDateResponse(date))
}

// ListPackageDates lista as datas reserváveis do pacote
func (h *TravelPackageHandler) ListPackageDates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	dates, err := h.packageService.ListDates(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.PackageDateResponse, len(dates))
	for i, date := range dates {
		responses[i] = dto.ToPackageDateResponse(date)
	}

	c.JSON(http.StatusOK, responses)
}
