package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
	"github.com/BruksfildServices01/vetclinic-api/internal/usecase/settings"
)

type SettingsHandler struct {
	service *settings.Service
}

func NewSettingsHandler(service *settings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.service.Current(c.Request.Context())
	if err != nil {
		writeError(c, err, "settings_not_found", "Configuración no encontrada.")
		return
	}
	httpresp.OK(c, s)
}

// Update takes any subset of sections and leaf fields.
func (h *SettingsHandler) Update(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	s, err := h.service.Update(c.Request.Context(), actorID(c), &patch)
	if err != nil {
		writeError(c, err, "settings_not_found", "Configuración no encontrada.")
		return
	}
	httpresp.OK(c, s)
}
