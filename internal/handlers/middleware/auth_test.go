package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/infrastructure/auth"
	"github.com/viajamais/viajamais-backend/internal/services"
)

func setupAuthRouter(tokens *auth.TokenManager, captured *services.TokenClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(BearerAuth(tokens))
	router.GET("/aberta", func(c *gin.Context) {
		*captured = ClaimsFromContext(c)
		c.Status(http.StatusOK)
	})
	router.GET("/protegida", RequireAuth(), func(c *gin.Context) {
		*captured = ClaimsFromContext(c)
		c.Status(http.StatusOK)
	})
	return router
}

func issueTestToken(t *testing.T, tokens *auth.TokenManager, role entities.Role) (string, uuid.UUID) {
	t.Helper()

	id := uuid.New()
	signed, _, err := tokens.Issue(&entities.User{ID: id, Role: role})
	if err != nil {
		t.Fatalf("falha ao emitir token: %v", err)
	}
	return signed, id
}

func TestBearerAuth(t *testing.T) {
	tokens := auth.NewTokenManager("segredo-de-teste", 60)

	t.Run("token válido popula as claims", func(t *testing.T) {
		var captured services.TokenClaims
		router := setupAuthRouter(tokens, &captured)

		signed, id := issueTestToken(t, tokens, entities.RoleAdmin)
		req := httptest.NewRequest(http.MethodGet, "/aberta", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}
		if !captured.Authenticated {
			t.Error("esperava claims autenticadas")
		}
		if captured.Subject != id.String() {
			t.Errorf("esperava subject '%s', obteve '%s'", id, captured.Subject)
		}
		if captured.Role != "ADMIN" {
			t.Errorf("esperava role 'ADMIN', obteve '%s'", captured.Role)
		}
	})

	t.Run("sem token segue como anônimo", func(t *testing.T) {
		var captured services.TokenClaims
		router := setupAuthRouter(tokens, &captured)

		req := httptest.NewRequest(http.MethodGet, "/aberta", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}
		if captured.Authenticated {
			t.Error("esperava claims não autenticadas")
		}
		if captured.Subject != services.AnonymousSubject {
			t.Errorf("esperava subject anônimo, obteve '%s'", captured.Subject)
		}
	})

	t.Run("token inválido segue como anônimo", func(t *testing.T) {
		var captured services.TokenClaims
		router := setupAuthRouter(tokens, &captured)

		req := httptest.NewRequest(http.MethodGet, "/aberta", nil)
		req.Header.Set("Authorization", "Bearer token-invalido")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}
		if captured.Authenticated {
			t.Error("esperava claims não autenticadas")
		}
	})
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenManager("segredo-de-teste", 60)

	t.Run("anônimo recebe 401", func(t *testing.T) {
		var captured services.TokenClaims
		router := setupAuthRouter(tokens, &captured)

		req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("autenticado passa", func(t *testing.T) {
		var captured services.TokenClaims
		router := setupAuthRouter(tokens, &captured)

		signed, _ := issueTestToken(t, tokens, entities.RoleUser)
		req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperava 200, obteve %d", w.Code)
		}
	})
}
