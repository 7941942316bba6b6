package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/httperr"
)

// writeError maps a usecase failure at the action boundary: business errors
// become 400 with their code, everything else a generic 500. Nothing retries.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, fallbackMessage)
		return
	}
	httperr.Internal(c, fallbackCode, fallbackMessage)
}
