package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/valueobjects"
)

type authzFixture struct {
	userRepo  *mockUserRepository
	ownership *mockOwnership
	service   *AuthorizationService
}

func newAuthzFixture() *authzFixture {
	f := &authzFixture{
		userRepo:  new(mockUserRepository),
		ownership: new(mockOwnership),
	}
	f.service = NewAuthorizationService(f.userRepo, f.ownership, noopLogger{})
	return f
}

func authzUser(id uuid.UUID, role entities.Role) *entities.User {
	email, _ := valueobjects.NewEmail("ator@example.com")
	return &entities.User{ID: id, Name: "Ator Teste", Email: email, Role: role}
}

func claimsFor(id uuid.UUID, role entities.Role) TokenClaims {
	return TokenClaims{Authenticated: true, Subject: id.String(), Role: string(role)}
}

func TestAuthorizationService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("claims não autenticadas são negadas", func(t *testing.T) {
		f := newAuthzFixture()

		_, err := f.service.CurrentUser(ctx, TokenClaims{})

		require.Error(t, err)
		assert.True(t, errors.IsAccessDenied(err))
	})

	t.Run("principal anônimo é negado", func(t *testing.T) {
		f := newAuthzFixture()

		_, err := f.service.CurrentUser(ctx, TokenClaims{Authenticated: true, Subject: AnonymousSubject})

		require.Error(t, err)
		assert.True(t, errors.IsAccessDenied(err))
	})

	t.Run("subject que não é uuid é negado", func(t *testing.T) {
		f := newAuthzFixture()

		_, err := f.service.CurrentUser(ctx, TokenClaims{Authenticated: true, Subject: "nao-e-uuid"})

		require.Error(t, err)
		assert.True(t, errors.IsAccessDenied(err))
	})

	t.Run("usuário inexistente é negado", func(t *testing.T) {
		f := newAuthzFixture()
		id := uuid.New()

		f.userRepo.On("FindByID", ctx, id).Return(nil, nil)

		_, err := f.service.CurrentUser(ctx, claimsFor(id, entities.RoleUser))

		require.Error(t, err)
		assert.True(t, errors.IsAccessDenied(err))
	})

	t.Run("usuário existente é resolvido", func(t *testing.T) {
		f := newAuthzFixture()
		id := uuid.New()
		user := authzUser(id, entities.RoleUser)

		f.userRepo.On("FindByID", ctx, id).Return(user, nil)

		resolved, err := f.service.CurrentUser(ctx, claimsFor(id, entities.RoleUser))

		require.NoError(t, err)
		assert.Equal(t, user, resolved)
	})
}

func TestAuthorizationService_CanAccessUserData(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name     string
		role     entities.Role
		target   uuid.UUID
		expected bool
	}{
		{"admin acessa qualquer usuário", entities.RoleAdmin, otherID, true},
		{"atendente acessa qualquer usuário", entities.RoleAtendente, otherID, true},
		{"usuário acessa a si mesmo", entities.RoleUser, actorID, true},
		{"usuário não acessa outro usuário", entities.RoleUser, otherID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthzFixture()
			f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, tt.role), nil)

			got := f.service.CanAccessUserData(ctx, claimsFor(actorID, tt.role), tt.target)

			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("claims anônimas negam sem consultar o banco", func(t *testing.T) {
		f := newAuthzFixture()

		got := f.service.CanAccessUserData(ctx, TokenClaims{}, otherID)

		assert.False(t, got)
		f.userRepo.AssertNotCalled(t, "FindByID", ctx, actorID)
	})
}

func TestAuthorizationService_CanUpdateUser(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name     string
		role     entities.Role
		target   uuid.UUID
		expected bool
	}{
		{"admin altera qualquer usuário", entities.RoleAdmin, otherID, true},
		{"atendente não altera nem a si mesmo", entities.RoleAtendente, actorID, false},
		{"usuário altera a si mesmo", entities.RoleUser, actorID, true},
		{"usuário não altera outro usuário", entities.RoleUser, otherID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthzFixture()
			f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, tt.role), nil)

			got := f.service.CanUpdateUser(ctx, claimsFor(actorID, tt.role), tt.target)

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAuthorizationService_CanCreateResourceForUser(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name     string
		role     entities.Role
		target   uuid.UUID
		expected bool
	}{
		{"admin cria para qualquer usuário", entities.RoleAdmin, otherID, true},
		{"atendente cria em nome próprio", entities.RoleAtendente, actorID, true},
		{"atendente não cria para outro usuário", entities.RoleAtendente, otherID, false},
		{"usuário cria em nome próprio", entities.RoleUser, actorID, true},
		{"usuário não cria para outro usuário", entities.RoleUser, otherID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthzFixture()
			f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, tt.role), nil)

			got := f.service.CanCreateResourceForUser(ctx, claimsFor(actorID, tt.role), tt.target, "reservation")

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAuthorizationService_EffectiveUserIDForListing(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	requestedID := uuid.New()

	t.Run("admin mantém o filtro pedido", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleAdmin), nil)

		got, err := f.service.EffectiveUserIDForListing(ctx, claimsFor(actorID, entities.RoleAdmin), &requestedID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, requestedID, *got)
	})

	t.Run("admin sem filtro lista tudo", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleAdmin), nil)

		got, err := f.service.EffectiveUserIDForListing(ctx, claimsFor(actorID, entities.RoleAdmin), nil)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("atendente mantém o filtro pedido", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleAtendente), nil)

		got, err := f.service.EffectiveUserIDForListing(ctx, claimsFor(actorID, entities.RoleAtendente), &requestedID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, requestedID, *got)
	})

	t.Run("usuário comum sempre filtra por si mesmo", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleUser), nil)

		got, err := f.service.EffectiveUserIDForListing(ctx, claimsFor(actorID, entities.RoleUser), &requestedID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, actorID, *got)
	})

	t.Run("anônimo recebe AccessDenied", func(t *testing.T) {
		f := newAuthzFixture()

		_, err := f.service.EffectiveUserIDForListing(ctx, TokenClaims{}, nil)

		require.Error(t, err)
		assert.True(t, errors.IsAccessDenied(err))
	})
}

func TestAuthorizationService_CanAccessReservation(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	reservationID := uuid.New()

	t.Run("admin acessa qualquer reserva", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleAdmin), nil)

		got := f.service.CanAccessReservation(ctx, claimsFor(actorID, entities.RoleAdmin), reservationID)

		assert.True(t, got)
		f.ownership.AssertNotCalled(t, "IsReservationOwnedByUser", ctx, reservationID, actorID)
	})

	t.Run("atendente acessa qualquer reserva", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleAtendente), nil)

		got := f.service.CanAccessReservation(ctx, claimsFor(actorID, entities.RoleAtendente), reservationID)

		assert.True(t, got)
	})

	t.Run("usuário acessa a própria reserva", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleUser), nil)
		f.ownership.On("IsReservationOwnedByUser", ctx, reservationID, actorID).Return(true, nil)

		got := f.service.CanAccessReservation(ctx, claimsFor(actorID, entities.RoleUser), reservationID)

		assert.True(t, got)
	})

	t.Run("usuário não acessa reserva alheia", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleUser), nil)
		f.ownership.On("IsReservationOwnedByUser", ctx, reservationID, actorID).Return(false, nil)

		got := f.service.CanAccessReservation(ctx, claimsFor(actorID, entities.RoleUser), reservationID)

		assert.False(t, got)
	})

	t.Run("erro na consulta de posse nega o acesso", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleUser), nil)
		f.ownership.On("IsReservationOwnedByUser", ctx, reservationID, actorID).Return(false, assert.AnError)

		got := f.service.CanAccessReservation(ctx, claimsFor(actorID, entities.RoleUser), reservationID)

		assert.False(t, got)
	})
}

func TestAuthorizationService_CanCancelReservation(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	reservationID := uuid.New()

	t.Run("admin cancela qualquer reserva", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleAdmin), nil)

		got := f.service.CanCancelReservation(ctx, claimsFor(actorID, entities.RoleAdmin), reservationID)

		assert.True(t, got)
	})

	t.Run("atendente só cancela a própria reserva", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleAtendente), nil)
		f.ownership.On("IsReservationOwnedByUser", ctx, reservationID, actorID).Return(false, nil)

		got := f.service.CanCancelReservation(ctx, claimsFor(actorID, entities.RoleAtendente), reservationID)

		assert.False(t, got)
	})

	t.Run("usuário cancela a própria reserva", func(t *testing.T) {
		f := newAuthzFixture()
		f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, entities.RoleUser), nil)
		f.ownership.On("IsReservationOwnedByUser", ctx, reservationID, actorID).Return(true, nil)

		got := f.service.CanCancelReservation(ctx, claimsFor(actorID, entities.RoleUser), reservationID)

		assert.True(t, got)
	})
}

func TestAuthorizationService_CanModifyResource(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	tests := []struct {
		name      string
		role      entities.Role
		operation string
		expected  bool
	}{
		{"admin pode criar", entities.RoleAdmin, "CREATE", true},
		{"admin pode exportar", entities.RoleAdmin, OperationExport, true},
		{"atendente pode exportar", entities.RoleAtendente, OperationExport, true},
		{"atendente não pode criar", entities.RoleAtendente, "CREATE", false},
		{"atendente não pode deletar", entities.RoleAtendente, "DELETE", false},
		{"usuário não pode exportar", entities.RoleUser, OperationExport, false},
		{"usuário não pode criar", entities.RoleUser, "CREATE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthzFixture()
			f.userRepo.On("FindByID", ctx, actorID).Return(authzUser(actorID, tt.role), nil)

			got := f.service.CanModifyResource(ctx, claimsFor(actorID, tt.role), tt.operation, "travel_package")

			assert.Equal(t, tt.expected, got)
		})
	}
}
