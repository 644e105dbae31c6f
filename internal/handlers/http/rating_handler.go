package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/handlers/dto"
	"github.com/viajamais/viajamais-backend/internal/handlers/middleware"
	"github.com/viajamais/viajamais-backend/internal/services"
)

// RatingHandler lida com requisições HTTP de avaliações de viagem
type RatingHandler struct {
	ratingService *services.RatingService
	authz         *services.AuthorizationService
	logger        ports.Logger
}

// NewRatingHandler cria um novo RatingHandler
func NewRatingHandler(ratingService *services.RatingService, authz *services.AuthorizationService, logger ports.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		authz:         authz,
		logger:        logger,
	}
}

// CreateRating avalia uma reserva (dono da reserva ou equipe)
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req dto.CreateRatingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanAccessReservation(c.Request.Context(), claims, reservationID) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	rating, err := h.ratingService.Create(c.Request.Context(), services.CreateRatingInput{
		ReservationID: reservationID,
		Rate:          req.Rate,
		Comment:       req.Comment,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRatingResponse(rating))
}

// GetReservationRating busca a avaliação de uma reserva
func (h *RatingHandler) GetReservationRating(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanAccessReservation(c.Request.Context(), claims, reservationID) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	rating, err := h.ratingService.FindByReservation(c.Request.Context(), reservationID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingResponse(rating))
}

// ListPackageRatings lista as avaliações de um pacote (público)
func (h *RatingHandler) ListPackageRatings(c *gin.Context) {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	ratings, err := h.ratingService.ListByPackage(c.Request.Context(), packageID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRatingResponses(ratings))
}
