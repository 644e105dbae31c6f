package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/handlers/dto"
)

// respondError traduz a taxonomia de erros de domínio para respostas
// RFC 7807. Erros fora da taxonomia viram 500 opaco: a causa vai para o
// log, nunca para o cliente.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	var notFound *errors.NotFoundError
	if stderrors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, notFound.Resource))
		return
	}

	var duplicate *errors.DuplicateRegistryError
	if stderrors.As(err, &duplicate) {
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, duplicate.Resource, duplicate.Field))
		return
	}

	var invalidField *errors.InvalidFieldError
	if stderrors.As(err, &invalidField) {
		response := dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: invalidField.Field, Message: invalidField.Message},
		})
		c.JSON(http.StatusBadRequest, response)
		return
	}

	var business *errors.BusinessError
	if stderrors.As(err, &business) {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, business.Error()))
		return
	}

	var accessDenied *errors.AccessDeniedError
	if stderrors.As(err, &accessDenied) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	logger.Error("unexpected error handling request", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
}

// bindingErrorResponse converte erro de binding do Gin em resposta de
// validação
func bindingErrorResponse(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, err.Error()))
}
