package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// ReservationRepository define a interface para persistência de reservas.
// Create persiste a reserva junto com seus viajantes; Delete remove os
// viajantes em cascata mas nunca toca no pagamento.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entities.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Reservation, error)
	ExistsByUserAndPackageDate(ctx context.Context, userID, packageDateID uuid.UUID) (bool, error)
	IsOwnedByUser(ctx context.Context, reservationID, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, reservation *entities.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters ReservationFilters) ([]*entities.Reservation, error)
}

// ReservationFilters contém filtros para listagem de reservas
type ReservationFilters struct {
	UserID   *uuid.UUID // nil = sem filtro de dono
	Page     int        // Página (começa em 0)
	PageSize int        // Itens por página (default: 10, max: 100)
}
