package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/middleware"
)

// writeError renders business errors with their own status, store misses
// as 404 with the given code, and anything else as a logged 500.
func writeError(c *gin.Context, err error, notFoundCode, notFoundMsg string) {
	if httperr.Business(c, err) {
		return
	}
	if errors.Is(err, docstore.ErrNotFound) {
		httperr.NotFound(c, notFoundCode, notFoundMsg)
		return
	}

	zap.L().Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Error interno.")
}

func invalidRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", "Datos inválidos: "+err.Error())
}

func actorID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// nowStamp is the timestamp format stored in created_at fields.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
