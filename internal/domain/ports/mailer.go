package ports

import (
	"context"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// Mailer define a interface para envio de emails transacionais.
// O envio é best-effort: falhas são logadas pelo chamador e nunca
// derrubam a operação de negócio.
type Mailer interface {
	SendReservationConfirmation(ctx context.Context, user *entities.User, reservation *entities.Reservation, pkg *entities.TravelPackage) error
}
