package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// ReservationOwnership é a consulta de posse delegada ao workflow de
// reservas: compara a foreign key de usuário da reserva informada
type ReservationOwnership interface {
	IsReservationOwnedByUser(ctx context.Context, reservationID, userID uuid.UUID) (bool, error)
}

// rolePolicy é o conjunto de capacidades de autorização de um role.
// As três variantes (admin, atendente, user) são um conjunto fechado:
// o dispatch é um switch exaustivo em policyForRole, e strings de role
// desconhecidas já falham antes, em entities.ParseRole.
type rolePolicy interface {
	// CanAccessUserData decide se o ator pode ler dados do usuário alvo
	CanAccessUserData(actor *entities.User, target uuid.UUID) bool
	// CanUpdateUser decide se o ator pode alterar o usuário alvo
	CanUpdateUser(actor *entities.User, target uuid.UUID) bool
	// CanCreateResourceForUser decide se o ator pode criar um recurso
	// (reserva, avaliação) em nome do usuário alvo
	CanCreateResourceForUser(actor *entities.User, target uuid.UUID, resource string) bool
	// EffectiveUserIDForListing resolve o filtro de dono efetivo de uma
	// listagem: nil = sem filtro
	EffectiveUserIDForListing(actor *entities.User, requested *uuid.UUID) *uuid.UUID
	// CanAccessReservation decide se o ator pode ler a reserva
	CanAccessReservation(ctx context.Context, actor *entities.User, reservationID uuid.UUID) (bool, error)
	// CanCancelReservation decide se o ator pode cancelar a reserva
	CanCancelReservation(ctx context.Context, actor *entities.User, reservationID uuid.UUID) (bool, error)
}

// policyForRole seleciona a política do role do ator
func policyForRole(role entities.Role, reservations ReservationOwnership) (rolePolicy, error) {
	switch role {
	case entities.RoleAdmin:
		return adminPolicy{}, nil
	case entities.RoleAtendente:
		return atendentePolicy{reservations: reservations}, nil
	case entities.RoleUser:
		return userPolicy{reservations: reservations}, nil
	}
	return nil, fmt.Errorf("no permission policy for role %q", role)
}

// adminPolicy: acesso irrestrito
type adminPolicy struct{}

func (adminPolicy) CanAccessUserData(*entities.User, uuid.UUID) bool { return true }

func (adminPolicy) CanUpdateUser(*entities.User, uuid.UUID) bool { return true }

func (adminPolicy) CanCreateResourceForUser(*entities.User, uuid.UUID, string) bool { return true }

func (adminPolicy) EffectiveUserIDForListing(_ *entities.User, requested *uuid.UUID) *uuid.UUID {
	return requested
}

func (adminPolicy) CanAccessReservation(context.Context, *entities.User, uuid.UUID) (bool, error) {
	return true, nil
}

func (adminPolicy) CanCancelReservation(context.Context, *entities.User, uuid.UUID) (bool, error) {
	return true, nil
}

// atendentePolicy: lê tudo, mas só escreve em nome próprio
type atendentePolicy struct {
	reservations ReservationOwnership
}

func (atendentePolicy) CanAccessUserData(*entities.User, uuid.UUID) bool { return true }

func (atendentePolicy) CanUpdateUser(*entities.User, uuid.UUID) bool { return false }

func (atendentePolicy) CanCreateResourceForUser(actor *entities.User, target uuid.UUID, _ string) bool {
	return actor.ID == target
}

func (atendentePolicy) EffectiveUserIDForListing(_ *entities.User, requested *uuid.UUID) *uuid.UUID {
	return requested
}

func (atendentePolicy) CanAccessReservation(context.Context, *entities.User, uuid.UUID) (bool, error) {
	return true, nil
}

func (p atendentePolicy) CanCancelReservation(ctx context.Context, actor *entities.User, reservationID uuid.UUID) (bool, error) {
	return p.reservations.IsReservationOwnedByUser(ctx, reservationID, actor.ID)
}

// userPolicy: restrito aos próprios recursos
type userPolicy struct {
	reservations ReservationOwnership
}

func (userPolicy) CanAccessUserData(actor *entities.User, target uuid.UUID) bool {
	return actor.ID == target
}

func (userPolicy) CanUpdateUser(actor *entities.User, target uuid.UUID) bool {
	return actor.ID == target
}

func (userPolicy) CanCreateResourceForUser(actor *entities.User, target uuid.UUID, _ string) bool {
	return actor.ID == target
}

// EffectiveUserIDForListing ignora o filtro pedido: usuário comum só
// enxerga as próprias reservas
func (userPolicy) EffectiveUserIDForListing(actor *entities.User, _ *uuid.UUID) *uuid.UUID {
	id := actor.ID
	return &id
}

func (p userPolicy) CanAccessReservation(ctx context.Context, actor *entities.User, reservationID uuid.UUID) (bool, error) {
	return p.reservations.IsReservationOwnedByUser(ctx, reservationID, actor.ID)
}

func (p userPolicy) CanCancelReservation(ctx context.Context, actor *entities.User, reservationID uuid.UUID) (bool, error) {
	return p.reservations.IsReservationOwnedByUser(ctx, reservationID, actor.ID)
}
