package settings

import "github.com/BruksfildServices01/vetclinic-api/internal/models"

// DocumentID is the fixed id of the settings singleton.
const DocumentID = "global-config"

// Defaults returns a fresh, fully populated settings record.
func Defaults() models.Settings {
	return models.Settings{
		Clinic: models.ClinicSettings{
			Name:        "VetClinic Pro",
			Address:     "Av. Principal 123, Ciudad",
			Phone:       "(555) 123-4567",
			Email:       "info@vetclinic.com",
			OpeningTime: "08:00",
			ClosingTime: "18:00",
			WorkingDays: []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado"},
		},
		Notifications: models.NotificationSettings{
			NewPatientEmail:      true,
			NewAppointmentEmail:  true,
			AppointmentReminders: true,
			DailyReports:         false,
			VaccinationAlerts:    true,
		},
		System: models.SystemSettings{
			Theme:      "claro",
			Language:   "es",
			DateFormat: "dd/mm/yyyy",
			TimeFormat: "24h",
			AutoSave:   true,
			AutoBackup: true,
		},
		Security: models.SecuritySettings{
			SessionExpiresHours:   "8",
			RequirePasswordChange: false,
			TwoFactorAuth:         false,
			ActivityLog:           true,
		},
	}
}

// Merge layers the given patches over the defaults, left to right; a later
// patch wins on every leaf it carries. Nil patches are skipped.
func Merge(layers ...*models.SettingsPatch) models.Settings {
	out := Defaults()
	for _, p := range layers {
		p.Apply(&out)
	}
	return out
}
