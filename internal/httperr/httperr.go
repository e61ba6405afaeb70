package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError traduz um erro de negócio para a resposta HTTP.
// NotFound → 404; Conflict e Validation → 400; o resto → 500 genérico,
// sem vazar detalhe interno.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		switch be.Kind {
		case KindNotFound:
			NotFound(c, be.Code, be.Message)
			return
		case KindConflict, KindValidation:
			BadRequest(c, be.Code, be.Message)
			return
		}
	}

	log.Error().Err(err).Msg("unhandled storage error")
	Internal(c, "internal_error", "Erro interno. Tente novamente.")
}
