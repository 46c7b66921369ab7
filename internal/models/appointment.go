package models

type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Owner       string `json:"owner"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type AppointmentPatch struct {
	PatientID   *string `json:"patient_id,omitempty"`
	PatientName *string `json:"patient_name,omitempty"`
	Owner       *string `json:"owner,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=pending completed cancelled in-progress"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

func (p AppointmentPatch) Apply(a *Appointment) {
	if p.PatientID != nil {
		a.PatientID = *p.PatientID
	}
	if p.PatientName != nil {
		a.PatientName = *p.PatientName
	}
	if p.Owner != nil {
		a.Owner = *p.Owner
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Reason != nil {
		a.Reason = *p.Reason
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.CreatedAt != nil {
		a.CreatedAt = *p.CreatedAt
	}
}
