package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// TokenManager emite e valida tokens de acesso HS256 com as claims
// sub (UUID do usuário) e role
type TokenManager struct {
	secret    []byte
	expiryMin int
}

// NewTokenManager cria um novo TokenManager
func NewTokenManager(secret string, expiryMin int) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		expiryMin: expiryMin,
	}
}

// Issue emite um token assinado para o usuário
func (m *TokenManager) Issue(user *entities.User) (string, time.Time, error) {
	exp := time.Now().UTC().Add(time.Duration(m.expiryMin) * time.Minute)

	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, exp, nil
}

// ParsedClaims são as claims extraídas de um token válido
type ParsedClaims struct {
	Subject string
	Role    string
}

// Parse valida a assinatura e a expiração do token, devolvendo as claims.
// Só HS256 é aceito; qualquer outro método de assinatura é rejeitado.
func (m *TokenManager) Parse(raw string) (*ParsedClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, ErrInvalidToken
	}

	return &ParsedClaims{Subject: sub, Role: role}, nil
}
