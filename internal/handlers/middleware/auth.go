package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/viajamais/viajamais-backend/internal/infrastructure/auth"
	"github.com/viajamais/viajamais-backend/internal/services"
)

// ClaimsContextKey é a chave usada para armazenar as claims do token
// no contexto do Gin
const ClaimsContextKey = "token_claims"

// BearerAuth valida o bearer token da requisição e armazena as claims
// (subject e role) no contexto. A resolução do usuário e as decisões de
// autorização ficam nos services, que recebem as claims explicitamente.
//
// Requisições sem token ou com token inválido seguem adiante com claims
// não autenticadas: rotas protegidas negam via AuthorizationService
// (fail closed), e o handler devolve 401/403.
func BearerAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := services.TokenClaims{Subject: services.AnonymousSubject}

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			raw := strings.TrimPrefix(header, "Bearer ")
			if parsed, err := tokens.Parse(raw); err == nil {
				claims = services.TokenClaims{
					Authenticated: true,
					Subject:       parsed.Subject,
					Role:          parsed.Role,
				}
			}
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireAuth aborta com 401 quando não há principal autenticado.
// Usado nas rotas que nem deveriam chegar ao service sem token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if !claims.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// ClaimsFromContext extrai as claims do contexto do Gin, devolvendo
// claims anônimas quando o middleware não rodou
func ClaimsFromContext(c *gin.Context) services.TokenClaims {
	v, exists := c.Get(ClaimsContextKey)
	if !exists {
		return services.TokenClaims{Subject: services.AnonymousSubject}
	}

	claims, ok := v.(services.TokenClaims)
	if !ok {
		return services.TokenClaims{Subject: services.AnonymousSubject}
	}

	return claims
}
