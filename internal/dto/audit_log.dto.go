package dto

import "github.com/BruksfildServices01/vetclinic-api/internal/models"

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}
