package models

// Patient keeps the tutor, the pet and its medical history together in one
// record. The first five fields are the ones the clinic frontend always sends.
type Patient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Owner    string `json:"owner"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	Symptoms string `json:"symptoms"`

	// tutor (owner) data
	TutorFirstName      string `json:"tutor_first_name,omitempty"`
	TutorLastName       string `json:"tutor_last_name,omitempty"`
	TutorDocumentType   string `json:"tutor_document_type,omitempty"`
	TutorDocumentNumber string `json:"tutor_document_number,omitempty"`
	TutorPrimaryPhone   string `json:"tutor_primary_phone,omitempty"`
	TutorSecondaryPhone string `json:"tutor_secondary_phone,omitempty"`
	TutorEmail          string `json:"tutor_email,omitempty"`
	TutorAddress        string `json:"tutor_address,omitempty"`
	TutorReferral       string `json:"tutor_referral,omitempty"`

	// pet data
	PetName           string   `json:"pet_name,omitempty"`
	PetSpecies        string   `json:"pet_species,omitempty"`
	PetBreed          string   `json:"pet_breed,omitempty"`
	PetBreedOther     string   `json:"pet_breed_other,omitempty"`
	PetSex            string   `json:"pet_sex,omitempty"`
	PetNeutered       string   `json:"pet_neutered,omitempty"`
	PetApproxAgeYears *int     `json:"pet_approx_age_years,omitempty"`
	PetColor          string   `json:"pet_color,omitempty"`
	PetWeightKg       *float64 `json:"pet_weight_kg,omitempty"`
	PetPhotoURL       string   `json:"pet_photo_url,omitempty"`

	// medical history
	ChronicDisease      string `json:"chronic_disease,omitempty"`
	PermanentMedication string `json:"permanent_medication,omitempty"`
	Allergies           string `json:"allergies,omitempty"`
	HasInsurance        *bool  `json:"has_insurance,omitempty"`
	InsurerName         string `json:"insurer_name,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

type PatientPatch struct {
	Name                *string  `json:"name,omitempty"`
	Owner               *string  `json:"owner,omitempty"`
	Email               *string  `json:"email,omitempty" binding:"omitempty,email"`
	Date                *string  `json:"date,omitempty"`
	Symptoms            *string  `json:"symptoms,omitempty"`
	TutorFirstName      *string  `json:"tutor_first_name,omitempty"`
	TutorLastName       *string  `json:"tutor_last_name,omitempty"`
	TutorDocumentType   *string  `json:"tutor_document_type,omitempty"`
	TutorDocumentNumber *string  `json:"tutor_document_number,omitempty"`
	TutorPrimaryPhone   *string  `json:"tutor_primary_phone,omitempty"`
	TutorSecondaryPhone *string  `json:"tutor_secondary_phone,omitempty"`
	TutorEmail          *string  `json:"tutor_email,omitempty"`
	TutorAddress        *string  `json:"tutor_address,omitempty"`
	TutorReferral       *string  `json:"tutor_referral,omitempty"`
	PetName             *string  `json:"pet_name,omitempty"`
	PetSpecies          *string  `json:"pet_species,omitempty"`
	PetBreed            *string  `json:"pet_breed,omitempty"`
	PetBreedOther       *string  `json:"pet_breed_other,omitempty"`
	PetSex              *string  `json:"pet_sex,omitempty"`
	PetNeutered         *string  `json:"pet_neutered,omitempty" binding:"omitempty,oneof=si no no_sabe"`
	PetApproxAgeYears   *int     `json:"pet_approx_age_years,omitempty"`
	PetColor            *string  `json:"pet_color,omitempty"`
	PetWeightKg         *float64 `json:"pet_weight_kg,omitempty"`
	PetPhotoURL         *string  `json:"pet_photo_url,omitempty"`
	ChronicDisease      *string  `json:"chronic_disease,omitempty"`
	PermanentMedication *string  `json:"permanent_medication,omitempty"`
	Allergies           *string  `json:"allergies,omitempty"`
	HasInsurance        *bool    `json:"has_insurance,omitempty"`
	InsurerName         *string  `json:"insurer_name,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
}

func (p PatientPatch) Apply(pt *Patient) {
	if p.Name != nil {
		pt.Name = *p.Name
	}
	if p.Owner != nil {
		pt.Owner = *p.Owner
	}
	if p.Email != nil {
		pt.Email = *p.Email
	}
	if p.Date != nil {
		pt.Date = *p.Date
	}
	if p.Symptoms != nil {
		pt.Symptoms = *p.Symptoms
	}
	if p.TutorFirstName != nil {
		pt.TutorFirstName = *p.TutorFirstName
	}
	if p.TutorLastName != nil {
		pt.TutorLastName = *p.TutorLastName
	}
	if p.TutorDocumentType != nil {
		pt.TutorDocumentType = *p.TutorDocumentType
	}
	if p.TutorDocumentNumber != nil {
		pt.TutorDocumentNumber = *p.TutorDocumentNumber
	}
	if p.TutorPrimaryPhone != nil {
		pt.TutorPrimaryPhone = *p.TutorPrimaryPhone
	}
	if p.TutorSecondaryPhone != nil {
		pt.TutorSecondaryPhone = *p.TutorSecondaryPhone
	}
	if p.TutorEmail != nil {
		pt.TutorEmail = *p.TutorEmail
	}
	if p.TutorAddress != nil {
		pt.TutorAddress = *p.TutorAddress
	}
	if p.TutorReferral != nil {
		pt.TutorReferral = *p.TutorReferral
	}
	if p.PetName != nil {
		pt.PetName = *p.PetName
	}
	if p.PetSpecies != nil {
		pt.PetSpecies = *p.PetSpecies
	}
	if p.PetBreed != nil {
		pt.PetBreed = *p.PetBreed
	}
	if p.PetBreedOther != nil {
		pt.PetBreedOther = *p.PetBreedOther
	}
	if p.PetSex != nil {
		pt.PetSex = *p.PetSex
	}
	if p.PetNeutered != nil {
		pt.PetNeutered = *p.PetNeutered
	}
	if p.PetApproxAgeYears != nil {
		pt.PetApproxAgeYears = p.PetApproxAgeYears
	}
	if p.PetColor != nil {
		pt.PetColor = *p.PetColor
	}
	if p.PetWeightKg != nil {
		pt.PetWeightKg = p.PetWeightKg
	}
	if p.PetPhotoURL != nil {
		pt.PetPhotoURL = *p.PetPhotoURL
	}
	if p.ChronicDisease != nil {
		pt.ChronicDisease = *p.ChronicDisease
	}
	if p.PermanentMedication != nil {
		pt.PermanentMedication = *p.PermanentMedication
	}
	if p.Allergies != nil {
		pt.Allergies = *p.Allergies
	}
	if p.HasInsurance != nil {
		pt.HasInsurance = p.HasInsurance
	}
	if p.InsurerName != nil {
		pt.InsurerName = *p.InsurerName
	}
	if p.Notes != nil {
		pt.Notes = *p.Notes
	}
}
