package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// PaymentRepository define a interface para persistência de pagamentos.
// Não há Delete: pagamentos são retidos mesmo quando a reserva some.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entities.Payment, error)
	Update(ctx context.Context, payment *entities.Payment) error
}
