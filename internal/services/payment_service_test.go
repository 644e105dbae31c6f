package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
)

func TestPaymentService_CreateForReservation(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()
	reservation := &entities.Reservation{ID: reservationID, UserID: uuid.New()}

	validInput := PaymentInput{
		ValuePaid:     1500,
		PaymentMethod: "BOLETO",
	}

	t.Run("cria pagamento para reserva sem pagamento", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		reservationRepo.On("FindByID", ctx, reservationID).Return(reservation, nil)
		paymentRepo.On("FindByReservationID", ctx, reservationID).Return(nil, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*entities.Payment")).Return(nil)

		payment, err := service.CreateForReservation(ctx, reservationID, validInput)

		require.NoError(t, err)
		assert.Equal(t, reservationID, payment.ReservationID)
		assert.Equal(t, entities.PaymentStatusPendente, payment.Status)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("reserva inexistente retorna NotFound", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		reservationRepo.On("FindByID", ctx, reservationID).Return(nil, nil)

		_, err := service.CreateForReservation(ctx, reservationID, validInput)

		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("reserva já paga retorna DuplicateRegistry", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		reservationRepo.On("FindByID", ctx, reservationID).Return(reservation, nil)
		paymentRepo.On("FindByReservationID", ctx, reservationID).Return(&entities.Payment{ID: uuid.New()}, nil)

		_, err := service.CreateForReservation(ctx, reservationID, validInput)

		require.Error(t, err)
		assert.True(t, errors.IsDuplicateRegistry(err))
	})

	t.Run("método desconhecido retorna InvalidField", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		reservationRepo.On("FindByID", ctx, reservationID).Return(reservation, nil)
		paymentRepo.On("FindByReservationID", ctx, reservationID).Return(nil, nil)

		input := validInput
		input.PaymentMethod = "DINHEIRO"
		_, err := service.CreateForReservation(ctx, reservationID, input)

		require.Error(t, err)
		assert.True(t, errors.IsInvalidField(err))
	})

	t.Run("parcelamento acima do valor pago retorna Business", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		reservationRepo.On("FindByID", ctx, reservationID).Return(reservation, nil)
		paymentRepo.On("FindByReservationID", ctx, reservationID).Return(nil, nil)

		installment := 3
		amount := 600.0
		input := validInput
		input.Installment = &installment
		input.InstallmentAmount = &amount
		_, err := service.CreateForReservation(ctx, reservationID, input)

		require.Error(t, err)
		assert.True(t, errors.IsBusiness(err))
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_FindByReservation(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	t.Run("reserva sem pagamento retorna nil", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		reservationRepo.On("FindByID", ctx, reservationID).Return(&entities.Reservation{ID: reservationID}, nil)
		paymentRepo.On("FindByReservationID", ctx, reservationID).Return(nil, nil)

		payment, err := service.FindByReservation(ctx, reservationID)

		require.NoError(t, err)
		assert.Nil(t, payment)
	})

	t.Run("reserva inexistente retorna NotFound", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		reservationRepo.On("FindByID", ctx, reservationID).Return(nil, nil)

		_, err := service.FindByReservation(ctx, reservationID)

		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestPaymentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	paymentID := uuid.New()

	t.Run("atualiza status conhecido", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		existing := &entities.Payment{ID: paymentID, Status: entities.PaymentStatusPendente}
		paymentRepo.On("FindByID", ctx, paymentID).Return(existing, nil)
		paymentRepo.On("Update", ctx, mock.AnythingOfType("*entities.Payment")).Return(nil)

		payment, err := service.UpdateStatus(ctx, paymentID, "APROVADO")

		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusAprovado, payment.Status)
	})

	t.Run("status desconhecido retorna InvalidField", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		paymentRepo.On("FindByID", ctx, paymentID).Return(&entities.Payment{ID: paymentID}, nil)

		_, err := service.UpdateStatus(ctx, paymentID, "ESTORNADO")

		require.Error(t, err)
		assert.True(t, errors.IsInvalidField(err))
	})

	t.Run("pagamento inexistente retorna NotFound", func(t *testing.T) {
		paymentRepo := new(mockPaymentRepository)
		reservationRepo := new(mockReservationRepository)
		service := NewPaymentService(paymentRepo, reservationRepo, noopLogger{})

		paymentRepo.On("FindByID", ctx, paymentID).Return(nil, nil)

		_, err := service.UpdateStatus(ctx, paymentID, "APROVADO")

		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
