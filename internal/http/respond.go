package http

import (
	"github.com/gin-gonic/gin"

	"blue-star-api/internal/domain"
)

// errorBody es la forma uniforme de error de la API. Details solo se
// completa en modo desarrollo.
type errorBody struct {
	Code    domain.ErrorCode `json:"code"`
	Error   string           `json:"error"`
	Details string           `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code domain.ErrorCode, message string) {
	c.JSON(status, errorBody{Code: code, Error: message})
}

// respondInternal mapea errores no clasificados a 500 sin filtrar el
// texto crudo del driver en produccion.
func respondInternal(c *gin.Context, dev bool, code domain.ErrorCode, message string, err error) {
	body := errorBody{Code: code, Error: message}
	if dev && err != nil {
		body.Details = err.Error()
	}
	c.JSON(500, body)
}
