package repository

import (
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/appointment"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type AppointmentRepository struct {
	documents[models.Appointment]
}

func NewAppointmentRepository(store docstore.Store) *AppointmentRepository {
	return &AppointmentRepository{newDocuments(
		store,
		docstore.CollectionAppointments,
		func(a *models.Appointment) string { return a.ID },
		func(a *models.Appointment, id string) { a.ID = id },
	)}
}

var _ domain.Repository = (*AppointmentRepository)(nil)
