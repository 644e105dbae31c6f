package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
)

// PaymentRepository implementa repositories.PaymentRepository.
// Não há Delete: pagamentos são retidos mesmo sem a reserva.
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository cria um novo PaymentRepository
func NewPaymentRepository(db *gorm.DB) repositories.PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	model := r.toModel(payment)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateDuplicate(err, "payment", "reservation")
	}

	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	var model PaymentModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PaymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entities.Payment, error) {
	var model PaymentModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("reservation_id = ?", reservationID.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *PaymentRepository) Update(ctx context.Context, payment *entities.Payment) error {
	model := r.toModel(payment)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

// Conversores
func (r *PaymentRepository) toModel(payment *entities.Payment) *PaymentModel {
	return &PaymentModel{
		ID:                payment.ID.String(),
		ReservationID:     payment.ReservationID.String(),
		ValuePaid:         payment.ValuePaid,
		PaymentMethod:     string(payment.PaymentMethod),
		Status:            string(payment.Status),
		Tax:               payment.Tax,
		Installment:       payment.Installment,
		InstallmentAmount: payment.InstallmentAmount,
		CreatedAt:         unixOrZero(payment.CreatedAt),
		UpdatedAt:         unixOrZero(payment.UpdatedAt),
	}
}

func (r *PaymentRepository) toEntity(model *PaymentModel) (*entities.Payment, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	reservationID, err := uuid.Parse(model.ReservationID)
	if err != nil {
		return nil, err
	}

	return &entities.Payment{
		ID:                id,
		ReservationID:     reservationID,
		ValuePaid:         model.ValuePaid,
		PaymentMethod:     entities.PaymentMethod(model.PaymentMethod),
		Status:            entities.PaymentStatus(model.Status),
		Tax:               model.Tax,
		Installment:       model.Installment,
		InstallmentAmount: model.InstallmentAmount,
		CreatedAt:         time.Unix(model.CreatedAt, 0),
		UpdatedAt:         time.Unix(model.UpdatedAt, 0),
	}, nil
}
