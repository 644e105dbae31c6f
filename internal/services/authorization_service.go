package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
)

// AnonymousSubject é o placeholder usado quando não há principal autenticado
const AnonymousSubject = "anonymousUser"

// TokenClaims carrega as claims já validadas extraídas do bearer token
// pelo middleware de autenticação. O principal é passado explicitamente
// a cada operação; não existe contexto de segurança global.
type TokenClaims struct {
	Authenticated bool
	Subject       string // UUID do usuário em forma de string
	Role          string
}

// OperationExport é a única operação de CanModifyResource liberada
// também para atendentes
const OperationExport = "EXPORT"

// AuthorizationService resolve o principal autenticado e delega as
// decisões à política do role correspondente.
//
// Todos os métodos que retornam bool falham fechado: qualquer erro na
// resolução do principal ou no dispatch da política vira false, nunca
// um grant silencioso. Internamente os erros são distinguidos (os
// métodos evaluate* retornam o motivo), colapsando para booleano só na
// borda pública.
type AuthorizationService struct {
	userRepo     repositories.UserRepository
	reservations ReservationOwnership
	logger       ports.Logger
}

// NewAuthorizationService cria um novo AuthorizationService
func NewAuthorizationService(
	userRepo repositories.UserRepository,
	reservations ReservationOwnership,
	logger ports.Logger,
) *AuthorizationService {
	return &AuthorizationService{
		userRepo:     userRepo,
		reservations: reservations,
		logger:       logger,
	}
}

// CurrentUser resolve o usuário autenticado a partir das claims.
// Falha com AccessDenied quando: não há autenticação, o principal é o
// placeholder anônimo, o subject não é um UUID, ou o usuário não existe.
func (s *AuthorizationService) CurrentUser(ctx context.Context, claims TokenClaims) (*entities.User, error) {
	if !claims.Authenticated || claims.Subject == "" || claims.Subject == AnonymousSubject {
		return nil, errors.NewAccessDenied("no authenticated principal")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.NewAccessDenied("principal subject is not a valid uuid")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewAccessDenied("principal user not found")
	}

	return user, nil
}

// policyForClaims resolve o usuário e a política do seu role
func (s *AuthorizationService) policyForClaims(ctx context.Context, claims TokenClaims) (*entities.User, rolePolicy, error) {
	user, err := s.CurrentUser(ctx, claims)
	if err != nil {
		return nil, nil, err
	}

	role, err := entities.ParseRole(string(user.Role))
	if err != nil {
		return nil, nil, err
	}

	policy, err := policyForRole(role, s.reservations)
	if err != nil {
		return nil, nil, err
	}

	return user, policy, nil
}

// deny colapsa um erro interno em false, registrando o motivo
func (s *AuthorizationService) deny(check string, err error) bool {
	s.logger.Warn("authorization check denied", "check", check, "reason", err)
	return false
}

// CanAccessUserData verifica se o principal pode ler dados do usuário alvo
func (s *AuthorizationService) CanAccessUserData(ctx context.Context, claims TokenClaims, target uuid.UUID) bool {
	actor, policy, err := s.policyForClaims(ctx, claims)
	if err != nil {
		return s.deny("CanAccessUserData", err)
	}
	return policy.CanAccessUserData(actor, target)
}

// CanUpdateUser verifica se o principal pode alterar o usuário alvo
func (s *AuthorizationService) CanUpdateUser(ctx context.Context, claims TokenClaims, target uuid.UUID) bool {
	actor, policy, err := s.policyForClaims(ctx, claims)
	if err != nil {
		return s.deny("CanUpdateUser", err)
	}
	return policy.CanUpdateUser(actor, target)
}

// CanCreateResourceForUser verifica se o principal pode criar um recurso
// em nome do usuário alvo
func (s *AuthorizationService) CanCreateResourceForUser(ctx context.Context, claims TokenClaims, target uuid.UUID, resource string) bool {
	actor, policy, err := s.policyForClaims(ctx, claims)
	if err != nil {
		return s.deny("CanCreateResourceForUser", err)
	}
	return policy.CanCreateResourceForUser(actor, target, resource)
}

// EffectiveUserIDForListing resolve o filtro de dono de uma listagem.
// Ao contrário dos checks booleanos, aqui a falha precisa ser
// distinguível pelo chamador, então retorna AccessDenied em vez de
// colapsar.
func (s *AuthorizationService) EffectiveUserIDForListing(ctx context.Context, claims TokenClaims, requested *uuid.UUID) (*uuid.UUID, error) {
	actor, policy, err := s.policyForClaims(ctx, claims)
	if err != nil {
		if errors.IsAccessDenied(err) {
			return nil, err
		}
		return nil, errors.NewAccessDenied(err.Error())
	}
	return policy.EffectiveUserIDForListing(actor, requested), nil
}

// CanAccessReservation verifica se o principal pode ler a reserva
func (s *AuthorizationService) CanAccessReservation(ctx context.Context, claims TokenClaims, reservationID uuid.UUID) bool {
	actor, policy, err := s.policyForClaims(ctx, claims)
	if err != nil {
		return s.deny("CanAccessReservation", err)
	}

	ok, err := policy.CanAccessReservation(ctx, actor, reservationID)
	if err != nil {
		return s.deny("CanAccessReservation", err)
	}
	return ok
}

// CanCancelReservation verifica se o principal pode cancelar a reserva
func (s *AuthorizationService) CanCancelReservation(ctx context.Context, claims TokenClaims, reservationID uuid.UUID) bool {
	actor, policy, err := s.policyForClaims(ctx, claims)
	if err != nil {
		return s.deny("CanCancelReservation", err)
	}

	ok, err := policy.CanCancelReservation(ctx, actor, reservationID)
	if err != nil {
		return s.deny("CanCancelReservation", err)
	}
	return ok
}

// CanModifyResource é o check grosso, independente de posse: só admin
// modifica recursos administrativamente, com exceção de EXPORT, também
// liberado para atendentes
func (s *AuthorizationService) CanModifyResource(ctx context.Context, claims TokenClaims, operation, resourceType string) bool {
	actor, _, err := s.policyForClaims(ctx, claims)
	if err != nil {
		return s.deny("CanModifyResource", err)
	}

	if actor.Role == entities.RoleAdmin {
		return true
	}
	if actor.Role == entities.RoleAtendente && operation == OperationExport {
		return true
	}
	return false
}
