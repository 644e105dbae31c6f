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

// PaymentHandler lida com requisições HTTP de pagamentos.
// Não há rota de delete: pagamentos nunca são apagados.
type PaymentHandler struct {
	paymentService *services.PaymentService
	authz          *services.AuthorizationService
	logger         ports.Logger
}

// NewPaymentHandler cria um novo PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService, authz *services.AuthorizationService, logger ports.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		authz:          authz,
		logger:         logger,
	}
}

// CreateReservationPayment registra o pagamento de uma reserva já
// existente (dono da reserva ou equipe)
func (h *PaymentHandler) CreateReservationPayment(c *gin.Context) {
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

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	payment, err := h.paymentService.CreateForReservation(c.Request.Context(), reservationID, services.PaymentInput{
		ValuePaid:         req.ValuePaid,
		PaymentMethod:     req.PaymentMethod,
		Status:            req.Status,
		Tax:               req.Tax,
		Installment:       req.Installment,
		InstallmentAmount: req.InstallmentAmount,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// GetReservationPayment busca o pagamento de uma reserva
func (h *PaymentHandler) GetReservationPayment(c *gin.Context) {
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

	payment, err := h.paymentService.FindByReservation(c.Request.Context(), reservationID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if payment == nil {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "payment"))
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// UpdatePaymentStatus altera o status de um pagamento (somente admin)
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindingErrorResponse(c, err)
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if !h.authz.CanModifyResource(c.Request.Context(), claims, "UPDATE", "payment") {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=APROVADO CANCELADO PENDENTE"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	payment, err := h.paymentService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
