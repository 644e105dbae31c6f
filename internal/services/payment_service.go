package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
)

// PaymentService contém a lógica de negócio para pagamentos.
// Não existe operação de delete: pagamentos são retidos sempre.
type PaymentService struct {
	paymentRepo     repositories.PaymentRepository
	reservationRepo repositories.ReservationRepository
	logger          ports.Logger
}

// NewPaymentService cria um novo PaymentService
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	reservationRepo repositories.ReservationRepository,
	logger ports.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// CreateForReservation registra o pagamento de uma reserva já existente
// (quando o pagamento não veio junto da criação da reserva)
func (s *PaymentService) CreateForReservation(ctx context.Context, reservationID uuid.UUID, input PaymentInput) (*entities.Payment, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, errors.NewNotFound("reservation")
	}

	existing, err := s.paymentRepo.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewDuplicateRegistry("payment", "reservation")
	}

	method, err := entities.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, errors.NewInvalidField("paymentMethod", err.Error())
	}

	status := entities.PaymentStatusPendente
	if input.Status != "" {
		status, err = entities.ParsePaymentStatus(input.Status)
		if err != nil {
			return nil, errors.NewInvalidField("status", err.Error())
		}
	}

	payment := &entities.Payment{
		ID:                uuid.New(),
		ReservationID:     reservationID,
		ValuePaid:         input.ValuePaid,
		PaymentMethod:     method,
		Status:            status,
		Tax:               input.Tax,
		Installment:       input.Installment,
		InstallmentAmount: input.InstallmentAmount,
	}

	if err := payment.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid payment", err)
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// FindByReservation busca o pagamento de uma reserva (nil quando não pago)
func (s *PaymentService) FindByReservation(ctx context.Context, reservationID uuid.UUID) (*entities.Payment, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, errors.NewNotFound("reservation")
	}

	return s.paymentRepo.FindByReservationID(ctx, reservationID)
}

// UpdateStatus altera o status de um pagamento existente
func (s *PaymentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entities.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, errors.NewNotFound("payment")
	}

	parsed, err := entities.ParsePaymentStatus(status)
	if err != nil {
		return nil, errors.NewInvalidField("status", err.Error())
	}

	payment.Status = parsed
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}
