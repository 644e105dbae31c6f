package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/valueobjects"
)

// Situation representa a situação de uma reserva
type Situation string

const (
	SituationPendente   Situation = "PENDENTE"
	SituationConfirmada Situation = "CONFIRMADA"
	SituationCancelada  Situation = "CANCELADA"
)

// ParseSituation converte uma string em Situation
func ParseSituation(s string) (Situation, error) {
	switch Situation(s) {
	case SituationPendente, SituationConfirmada, SituationCancelada:
		return Situation(s), nil
	}
	return "", fmt.Errorf("unknown situation %q", s)
}

// Reservation representa a reserva de um usuário para uma data de pacote.
// O par (UserID, PackageDateID) é único: um usuário não reserva a mesma
// data duas vezes. Travelers pertencem exclusivamente à reserva e são
// removidos junto com ela; o Payment é um agregado separado e sobrevive
// à exclusão da reserva (decisão registrada no DESIGN.md).
type Reservation struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PackageDateID   uuid.UUID
	ReservationDate time.Time
	Situation       Situation
	CancelledDate   *time.Time
	Travelers       []Traveler
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Traveler é um viajante incluído em uma reserva.
// O par (email, cpf) é único no sistema inteiro, não só dentro da reserva.
type Traveler struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Name          string
	Email         valueobjects.Email
	CPF           valueobjects.CPF
	BirthDate     time.Time
}

// IsOwnedBy verifica se a reserva pertence ao usuário informado
func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

// Cancel marca a reserva como cancelada, registrando a data
func (r *Reservation) Cancel() {
	now := time.Now()
	r.Situation = SituationCancelada
	r.CancelledDate = &now
}
