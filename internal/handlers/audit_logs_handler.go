package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/dto"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/infra/repository"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *repository.AuditLogRepository
}

func NewAuditLogsHandler(logs *repository.AuditLogRepository) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logs, total, err := h.logs.Query(c.Request.Context(), repository.AuditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Error al listar los registros.")
		return
	}

	httpresp.OK(c, dto.AuditLogPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
