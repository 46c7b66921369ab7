package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

func decodePatch(t *testing.T, raw string) *models.SettingsPatch {
	t.Helper()
	var p models.SettingsPatch
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return &p
}

func TestMerge_NothingStoredGivesDefaults(t *testing.T) {
	assert.Equal(t, Defaults(), Merge(nil, nil))
}

func TestMerge_StoredThenIncoming(t *testing.T) {
	stored := decodePatch(t, `{"sistema":{"tema":"oscuro"}}`)
	incoming := decodePatch(t, `{"sistema":{"idioma":"en"}}`)

	got := Merge(stored, incoming)

	assert.Equal(t, "oscuro", got.System.Theme)
	assert.Equal(t, "en", got.System.Language)

	want := Defaults()
	want.System.Theme = "oscuro"
	want.System.Language = "en"
	assert.Equal(t, want, got)
}

func TestMerge_IncomingFalseOverridesTrue(t *testing.T) {
	got := Merge(decodePatch(t, `{"notificaciones":{"email_nueva_cita":false}}`))

	assert.False(t, got.Notifications.NewAppointmentEmail)
	assert.True(t, got.Notifications.NewPatientEmail)
}

func TestMerge_WorkingDaysReplacedWhole(t *testing.T) {
	got := Merge(decodePatch(t, `{"clinica":{"dias_laborales":["lunes"]}}`))

	assert.Equal(t, []string{"lunes"}, got.Clinic.WorkingDays)
	assert.Equal(t, "VetClinic Pro", got.Clinic.Name)
}

func TestDefaults_ReturnsIndependentCopies(t *testing.T) {
	a := Defaults()
	a.Clinic.WorkingDays[0] = "domingo"

	assert.Equal(t, "lunes", Defaults().Clinic.WorkingDays[0])
}
