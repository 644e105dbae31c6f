package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rating é a avaliação de uma viagem, ligada a exatamente uma reserva.
// Cada reserva admite no máximo uma avaliação.
type Rating struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Rate          int
	Comment       string
	CreatedAt     time.Time
}

// Validate valida regras de negócio da entidade Rating
func (r *Rating) Validate() error {
	if r.Rate < 1 || r.Rate > 5 {
		return fmt.Errorf("rate must be between 1 and 5, got %d", r.Rate)
	}
	return nil
}
