package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/valueobjects"
)

func testTokenUser(t *testing.T) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail("maria@example.com")
	if err != nil {
		t.Fatalf("falha ao criar email: %v", err)
	}

	return &entities.User{
		ID:    uuid.New(),
		Name:  "Maria Souza",
		Email: email,
		Role:  entities.RoleAtendente,
	}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	manager := NewTokenManager("segredo-de-teste", 60)
	user := testTokenUser(t)

	t.Run("token emitido é aceito no parse", func(t *testing.T) {
		signed, exp, err := manager.Issue(user)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if !exp.After(time.Now()) {
			t.Error("esperava expiração no futuro")
		}

		claims, err := manager.Parse(signed)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if claims.Subject != user.ID.String() {
			t.Errorf("esperava subject '%s', obteve '%s'", user.ID, claims.Subject)
		}
		if claims.Role != "ATENDENTE" {
			t.Errorf("esperava role 'ATENDENTE', obteve '%s'", claims.Role)
		}
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		other := NewTokenManager("outro-segredo", 60)
		signed, _, err := other.Issue(user)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		if _, err := manager.Parse(signed); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("token expirado é rejeitado", func(t *testing.T) {
		expired := NewTokenManager("segredo-de-teste", -1)
		signed, _, err := expired.Issue(user)
		if err != nil {
			t.Fatalf("falha ao emitir token: %v", err)
		}

		if _, err := manager.Parse(signed); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("string arbitrária é rejeitada", func(t *testing.T) {
		if _, err := manager.Parse("nao-e-um-jwt"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}
