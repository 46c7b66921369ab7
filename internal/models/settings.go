package models

// Settings is the clinic-wide configuration singleton. JSON keys follow the
// clinic frontend, which is written in Spanish.
type Settings struct {
	Clinic        ClinicSettings       `json:"clinica"`
	Notifications NotificationSettings `json:"notificaciones"`
	System        SystemSettings       `json:"sistema"`
	Security      SecuritySettings     `json:"seguridad"`
}

type ClinicSettings struct {
	Name        string   `json:"nombre"`
	Address     string   `json:"direccion"`
	Phone       string   `json:"telefono"`
	Email       string   `json:"email"`
	OpeningTime string   `json:"horario_apertura"`
	ClosingTime string   `json:"horario_cierre"`
	WorkingDays []string `json:"dias_laborales"`
}

type NotificationSettings struct {
	NewPatientEmail      bool `json:"email_nuevo_paciente"`
	NewAppointmentEmail  bool `json:"email_nueva_cita"`
	AppointmentReminders bool `json:"recordatorios_citas"`
	DailyReports         bool `json:"reportes_diarios"`
	VaccinationAlerts    bool `json:"alertas_vacunacion"`
}

type SystemSettings struct {
	Theme      string `json:"tema"`
	Language   string `json:"idioma"`
	DateFormat string `json:"formato_fecha"`
	TimeFormat string `json:"formato_hora"`
	AutoSave   bool   `json:"autoguardado"`
	AutoBackup bool   `json:"backup_automatico"`
}

type SecuritySettings struct {
	SessionExpiresHours   string `json:"sesion_expira"`
	RequirePasswordChange bool   `json:"requiere_cambio_password"`
	TwoFactorAuth         bool   `json:"autenticacion_dos_factor"`
	ActivityLog           bool   `json:"log_actividades"`
}

// SettingsPatch is both the update payload and the stored form: a stored
// document may hold only some sections or leaves.
type SettingsPatch struct {
	Clinic        *ClinicSettingsPatch       `json:"clinica,omitempty"`
	Notifications *NotificationSettingsPatch `json:"notificaciones,omitempty"`
	System        *SystemSettingsPatch       `json:"sistema,omitempty"`
	Security      *SecuritySettingsPatch     `json:"seguridad,omitempty"`
}

type ClinicSettingsPatch struct {
	Name        *string   `json:"nombre,omitempty"`
	Address     *string   `json:"direccion,omitempty"`
	Phone       *string   `json:"telefono,omitempty"`
	Email       *string   `json:"email,omitempty"`
	OpeningTime *string   `json:"horario_apertura,omitempty"`
	ClosingTime *string   `json:"horario_cierre,omitempty"`
	WorkingDays *[]string `json:"dias_laborales,omitempty"`
}

type NotificationSettingsPatch struct {
	NewPatientEmail      *bool `json:"email_nuevo_paciente,omitempty"`
	NewAppointmentEmail  *bool `json:"email_nueva_cita,omitempty"`
	AppointmentReminders *bool `json:"recordatorios_citas,omitempty"`
	DailyReports         *bool `json:"reportes_diarios,omitempty"`
	VaccinationAlerts    *bool `json:"alertas_vacunacion,omitempty"`
}

type SystemSettingsPatch struct {
	Theme      *string `json:"tema,omitempty"`
	Language   *string `json:"idioma,omitempty"`
	DateFormat *string `json:"formato_fecha,omitempty"`
	TimeFormat *string `json:"formato_hora,omitempty"`
	AutoSave   *bool   `json:"autoguardado,omitempty"`
	AutoBackup *bool   `json:"backup_automatico,omitempty"`
}

type SecuritySettingsPatch struct {
	SessionExpiresHours   *string `json:"sesion_expira,omitempty"`
	RequirePasswordChange *bool   `json:"requiere_cambio_password,omitempty"`
	TwoFactorAuth         *bool   `json:"autenticacion_dos_factor,omitempty"`
	ActivityLog           *bool   `json:"log_actividades,omitempty"`
}

// Apply overwrites the leaves of s that are present in p.
func (p *SettingsPatch) Apply(s *Settings) {
	if p == nil {
		return
	}
	if c := p.Clinic; c != nil {
		setString(&s.Clinic.Name, c.Name)
		setString(&s.Clinic.Address, c.Address)
		setString(&s.Clinic.Phone, c.Phone)
		setString(&s.Clinic.Email, c.Email)
		setString(&s.Clinic.OpeningTime, c.OpeningTime)
		setString(&s.Clinic.ClosingTime, c.ClosingTime)
		if c.WorkingDays != nil {
			s.Clinic.WorkingDays = append([]string(nil), (*c.WorkingDays)...)
		}
	}
	if n := p.Notifications; n != nil {
		setBool(&s.Notifications.NewPatientEmail, n.NewPatientEmail)
		setBool(&s.Notifications.NewAppointmentEmail, n.NewAppointmentEmail)
		setBool(&s.Notifications.AppointmentReminders, n.AppointmentReminders)
		setBool(&s.Notifications.DailyReports, n.DailyReports)
		setBool(&s.Notifications.VaccinationAlerts, n.VaccinationAlerts)
	}
	if sy := p.System; sy != nil {
		setString(&s.System.Theme, sy.Theme)
		setString(&s.System.Language, sy.Language)
		setString(&s.System.DateFormat, sy.DateFormat)
		setString(&s.System.TimeFormat, sy.TimeFormat)
		setBool(&s.System.AutoSave, sy.AutoSave)
		setBool(&s.System.AutoBackup, sy.AutoBackup)
	}
	if se := p.Security; se != nil {
		setString(&s.Security.SessionExpiresHours, se.SessionExpiresHours)
		setBool(&s.Security.RequirePasswordChange, se.RequirePasswordChange)
		setBool(&s.Security.TwoFactorAuth, se.TwoFactorAuth)
		setBool(&s.Security.ActivityLog, se.ActivityLog)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
