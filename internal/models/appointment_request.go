package models

const (
	RequestStatusPending  = "pending"
	RequestStatusManaged  = "managed"
	RequestStatusRejected = "rejected"
)

// AppointmentRequest is a booking request left by a pet owner from the
// public site, later managed by the clinic staff.
type AppointmentRequest struct {
	ID        string `json:"id"`
	OwnerName string `json:"owner_name"`
	PetName   string `json:"pet_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type AppointmentRequestPatch struct {
	OwnerName *string `json:"owner_name,omitempty"`
	PetName   *string `json:"pet_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Reason    *string `json:"reason,omitempty"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=pending managed rejected"`
	CreatedAt *string `json:"created_at,omitempty"`
}

func (p AppointmentRequestPatch) Apply(r *AppointmentRequest) {
	if p.OwnerName != nil {
		r.OwnerName = *p.OwnerName
	}
	if p.PetName != nil {
		r.PetName = *p.PetName
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Reason != nil {
		r.Reason = *p.Reason
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.CreatedAt != nil {
		r.CreatedAt = *p.CreatedAt
	}
}
