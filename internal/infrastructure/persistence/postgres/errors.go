package postgres

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/viajamais/viajamais-backend/internal/domain/errors"
)

// translateDuplicate converte violações de constraint em erros de
// domínio. É o backstop das checagens consultivas dos services: sob
// corrida, a constraint do banco é quem segura o insert duplicado, e o
// chamador recebe o mesmo erro que a pré-checagem daria. Violações de
// foreign key e de check constraint viram BusinessError ao invés de
// vazarem como erro interno.
func translateDuplicate(err error, resource, field string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.NewDuplicateRegistry(resource, field)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return domainerrors.NewBusiness("invalid "+resource, err)
	}
	return err
}
