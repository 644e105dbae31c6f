package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/viajamais/viajamais-backend/internal/domain/valueobjects"
)

// RegisterValidators registra as validações customizadas no engine de
// binding do Gin. Hoje só "cpf", usada nos viajantes.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		_, err := valueobjects.NewCPF(fl.Field().String())
		return err == nil
	})
}
