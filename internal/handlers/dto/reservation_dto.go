package dto

import (
	"time"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/services"
)

// TravelerRequest representa um viajante na requisição de reserva
type TravelerRequest struct {
	Name      string    `json:"name" binding:"required,min=2,max=100"`
	Email     string    `json:"email" binding:"required,email"`
	CPF       string    `json:"cpf" binding:"required,cpf"`
	BirthDate time.Time `json:"birth_date" binding:"required"`
}

// PaymentRequest representa o pagamento na requisição de reserva
type PaymentRequest struct {
	ValuePaid         float64  `json:"value_paid" binding:"required,gte=0"`
	PaymentMethod     string   `json:"payment_method" binding:"required,oneof=CREDITO DEBITO BOLETO PIX"`
	Status            string   `json:"status" binding:"omitempty,oneof=APROVADO CANCELADO PENDENTE"`
	Tax               float64  `json:"tax" binding:"omitempty,gte=0"`
	Installment       *int     `json:"installment" binding:"omitempty,gte=1"`
	InstallmentAmount *float64 `json:"installment_amount" binding:"omitempty,gte=0"`
}

// CreateReservationRequest representa a requisição para criar uma reserva
type CreateReservationRequest struct {
	UserID          string             `json:"user_id" binding:"required,uuid"`
	PackageDateID   string             `json:"package_date_id" binding:"required,uuid"`
	ReservationDate *time.Time         `json:"reservation_date"`
	Travelers       []*TravelerRequest `json:"travelers" binding:"omitempty,dive"`
	Payment         *PaymentRequest    `json:"payment"`
}

// UpdateReservationRequest representa a requisição para atualizar uma reserva
type UpdateReservationRequest struct {
	Situation       *string    `json:"situation" binding:"omitempty,oneof=PENDENTE CONFIRMADA CANCELADA"`
	ReservationDate *time.Time `json:"reservation_date"`
}

// TravelerResponse representa um viajante na resposta
type TravelerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	BirthDate time.Time `json:"birth_date"`
}

// PaymentResponse representa um pagamento na resposta
type PaymentResponse struct {
	ID                string   `json:"id"`
	ReservationID     string   `json:"reservation_id"`
	ValuePaid         float64  `json:"value_paid"`
	PaymentMethod     string   `json:"payment_method"`
	Status            string   `json:"status"`
	Tax               float64  `json:"tax"`
	Installment       *int     `json:"installment,omitempty"`
	InstallmentAmount *float64 `json:"installment_amount,omitempty"`
}

// ReservationResponse representa uma reserva na resposta, com o
// pagamento anexado quando existir
type ReservationResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	PackageDateID   string             `json:"package_date_id"`
	ReservationDate time.Time          `json:"reservation_date"`
	Situation       string             `json:"situation"`
	CancelledDate   *time.Time         `json:"cancelled_date,omitempty"`
	Travelers       []TravelerResponse `json:"travelers"`
	Payment         *PaymentResponse   `json:"payment,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ToPaymentResponse converte uma entidade Payment para resposta
func ToPaymentResponse(payment *entities.Payment) *PaymentResponse {
	if payment == nil {
		return nil
	}
	return &PaymentResponse{
		ID:                payment.ID.String(),
		ReservationID:     payment.ReservationID.String(),
		ValuePaid:         payment.ValuePaid,
		PaymentMethod:     string(payment.PaymentMethod),
		Status:            string(payment.Status),
		Tax:               payment.Tax,
		Installment:       payment.Installment,
		InstallmentAmount: payment.InstallmentAmount,
	}
}

// ToReservationResponse converte uma reserva (e pagamento opcional)
// para resposta
func ToReservationResponse(reservation *entities.Reservation, payment *entities.Payment) ReservationResponse {
	travelers := make([]TravelerResponse, 0, len(reservation.Travelers))
	for _, t := range reservation.Travelers {
		travelers = append(travelers, TravelerResponse{
			ID:        t.ID.String(),
			Name:      t.Name,
			Email:     t.Email.String(),
			CPF:       t.CPF.Formatted(),
			BirthDate: t.BirthDate,
		})
	}

	return ReservationResponse{
		ID:              reservation.ID.String(),
		UserID:          reservation.UserID.String(),
		PackageDateID:   reservation.PackageDateID.String(),
		ReservationDate: reservation.ReservationDate,
		Situation:       string(reservation.Situation),
		CancelledDate:   reservation.CancelledDate,
		Travelers:       travelers,
		Payment:         ToPaymentResponse(payment),
		CreatedAt:       reservation.CreatedAt,
	}
}

// ToReservationResponses converte a lista combinada reserva+pagamento
func ToReservationResponses(rows []*services.ReservationWithPayment) []ReservationResponse {
	responses := make([]ReservationResponse, len(rows))
	for i, row := range rows {
		responses[i] = ToReservationResponse(row.Reservation, row.Payment)
	}
	return responses
}
