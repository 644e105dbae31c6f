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

// ReservationHandler lida com requisições HTTP relacionadas a reservas
type ReservationHandler struct {
	reservationService *services.ReservationService
	authz              *services.AuthorizationService
	logger             ports.Logger
}

// NewReservationHandler cria um novo ReservationHandler
func NewReservationHandler(
	reservationService *services.ReservationService,
	authz *services.AuthorizationService,
	logger ports.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		authz:              authz,
		logger:             logger,
	}
}

// CreateReservation cria uma reserva para o usuário informado.
// Usuário comum e atendente só criam em nome próprio; admin, para
// qualquer um.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	packageDateID, err := uuid.Parse(req.PackageDateID)
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanCreateResourceForUser(c.Request.Context(), claims, userID, "reservation") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	input := services.CreateReservationInput{
		UserID:          userID,
		PackageDateID:   packageDateID,
		ReservationDate: req.ReservationDate,
	}

	for _, t := range req.Travelers {
		if t == nil {
			continue
		}
		input.Travelers = append(input.Travelers, &services.TravelerInput{
			Name:      t.Name,
			Email:     t.Email,
			CPF:       t.CPF,
			BirthDate: t.BirthDate,
		})
	}

	if req.Payment != nil {
		input.Payment = &services.PaymentInput{
			ValuePaid:         req.Payment.ValuePaid,
			PaymentMethod:     req.Payment.PaymentMethod,
			Status:            req.Payment.Status,
			Tax:               req.Payment.Tax,
			Installment:       req.Payment.Installment,
			InstallmentAmount: req.Payment.InstallmentAmount,
		}
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation, nil))
}

// ListReservations lista reservas paginadas. O filtro de dono efetivo
// vem da política do role: usuário comum só enxerga as próprias.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var requested *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			bindingErrorResponse(c, err)
			return
		}
		requested = &id
	}

	claims := middleware.ClaimsFromContext(c)
	effective, err := h.authz.EffectiveUserIDForListing(c.Request.Context(), claims, requested)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	rows, err := h.reservationService.FindAll(c.Request.Context(), repositories.ReservationFilters{
		UserID:   effective,
		Page:     queryInt(c, "page", 0),
		PageSize: queryInt(c, "page_size", 10),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(rows))
}

// GetReservation busca uma reserva por ID (dono ou equipe)
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanAccessReservation(c.Request.Context(), claims, id) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	row, err := h.reservationService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(row.Reservation, row.Payment))
}

// UpdateReservation atualiza situação e/ou data da reserva (equipe)
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "UPDATE", "reservation") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, services.UpdateReservationInput{
		Situation:       req.Situation,
		ReservationDate: req.ReservationDate,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation, nil))
}

// DeleteReservation remove uma reserva (dono ou equipe). Os viajantes
// caem junto; o pagamento é retido.
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanCancelReservation(c.Request.Context(), claims, id) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportReservations exporta todas as reservas em CSV (admin e atendente)
func (h *ReservationHandler) ExportReservations(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, services.OperationExport, "reservation") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)

	if err := h.reservationService.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("failed to export reservations", "error", err)
	}
}
