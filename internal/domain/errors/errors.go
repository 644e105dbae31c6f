package errors

import (
	"errors"
	"fmt"
)

// Sentinelas de autenticação.
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// NotFoundError indica que uma entidade referenciada por id não existe
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFound cria um NotFoundError para o recurso informado
func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// IsNotFound verifica se o erro é um NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// DuplicateRegistryError indica violação de unicidade (título de pacote,
// contatos de usuário, (email, cpf) de viajante, par (usuário, data) de reserva)
type DuplicateRegistryError struct {
	Resource string
	Field    string
}

func (e *DuplicateRegistryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s already registered with this %s", e.Resource, e.Field)
	}
	return fmt.Sprintf("%s already registered", e.Resource)
}

// NewDuplicateRegistry cria um DuplicateRegistryError
func NewDuplicateRegistry(resource, field string) error {
	return &DuplicateRegistryError{Resource: resource, Field: field}
}

// IsDuplicateRegistry verifica se o erro é um DuplicateRegistryError
func IsDuplicateRegistry(err error) bool {
	var dup *DuplicateRegistryError
	return errors.As(err, &dup)
}

// InvalidFieldError indica que um campo específico falhou em validação
// semântica, carregando o nome do campo para feedback pontual
type InvalidFieldError struct {
	Field   string
	Message string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Message)
}

// NewInvalidField cria um InvalidFieldError
func NewInvalidField(field, message string) error {
	return &InvalidFieldError{Field: field, Message: message}
}

// IsInvalidField verifica se o erro é um InvalidFieldError
func IsInvalidField(err error) bool {
	var inv *InvalidFieldError
	return errors.As(err, &inv)
}

// AccessDeniedError indica falha de autorização: role sem permissão,
// recurso de outro dono, ou principal ausente/inválido
type AccessDeniedError struct {
	Reason string
}

func (e *AccessDeniedError) Error() string {
	if e.Reason != "" {
		return "access denied: " + e.Reason
	}
	return "access denied"
}

// NewAccessDenied cria um AccessDeniedError
func NewAccessDenied(reason string) error {
	return &AccessDeniedError{Reason: reason}
}

// IsAccessDenied verifica se o erro é um AccessDeniedError
func IsAccessDenied(err error) bool {
	var ad *AccessDeniedError
	return errors.As(err, &ad)
}

// BusinessError é a violação genérica de regra de domínio, incluindo
// violações de integridade vindas da persistência, já desembrulhadas
// até a causa raiz para que a mensagem seja acionável
type BusinessError struct {
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusiness cria um BusinessError
func NewBusiness(message string, cause error) error {
	return &BusinessError{Message: message, Err: cause}
}

// IsBusiness verifica se o erro é um BusinessError
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
