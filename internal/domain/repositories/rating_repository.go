package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// RatingRepository define a interface para persistência de avaliações
type RatingRepository interface {
	Create(ctx context.Context, rating *entities.Rating) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entities.Rating, error)
	ExistsByReservationID(ctx context.Context, reservationID uuid.UUID) (bool, error)
	ListByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entities.Rating, error)
}
