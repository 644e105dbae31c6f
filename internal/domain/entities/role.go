package entities

import "fmt"

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleAtendente Role = "ATENDENTE"
	RoleUser      Role = "USER"
)

// ParseRole converte uma string em Role.
// Roles desconhecidos falham explicitamente ao invés de virar um deny
// silencioso: um role mal configurado precisa aparecer no log, não sumir.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleAtendente, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsStaff verifica se o role tem privilégios de equipe (admin ou atendente)
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleAtendente
}

func (r Role) String() string {
	return string(r)
}
