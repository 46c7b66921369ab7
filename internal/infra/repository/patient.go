package repository

import (
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type PatientRepository struct {
	documents[models.Patient]
}

func NewPatientRepository(store docstore.Store) *PatientRepository {
	return &PatientRepository{newDocuments(
		store,
		docstore.CollectionPatients,
		func(p *models.Patient) string { return p.ID },
		func(p *models.Patient, id string) { p.ID = id },
	)}
}

type AppointmentRequestRepository struct {
	documents[models.AppointmentRequest]
}

func NewAppointmentRequestRepository(store docstore.Store) *AppointmentRequestRepository {
	return &AppointmentRequestRepository{newDocuments(
		store,
		docstore.CollectionAppointmentRequests,
		func(r *models.AppointmentRequest) string { return r.ID },
		func(r *models.AppointmentRequest, id string) { r.ID = id },
	)}
}
