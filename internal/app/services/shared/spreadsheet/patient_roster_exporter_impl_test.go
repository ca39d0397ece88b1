package spreadsheet

import (
	"bytes"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/responses"
	"cataractcare-service/internal/pkg/records"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func rosterPatient(raw map[string]any) responses.Patient {
	record := records.Normalize(raw)
	return responses.Patient{
		PatientRecord: record,
		Grading: responses.PatientGrading{
			Left:  records.PresentGrade(record, records.EyeLeft),
			Right: records.PresentGrade(record, records.EyeRight),
		},
	}
}

func TestPatientRosterExporter(t *testing.T) {
	patients := []responses.Patient{
		rosterPatient(map[string]any{
			"pid":                  "101",
			"name":                 "Alice Smith",
			"medicalHistory":       []any{"Glaucoma", "Allergies"},
			"grade_L":              "2",
			"leftEyeCataractTypes": []any{"Cortical"},
			"image_urls":           []any{"l0", "r1", "l2"},
		}),
		rosterPatient(map[string]any{"pid": "7", "name": "Bob"}),
	}

	data, err := NewPatientRosterExporter().Export(patients)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{constvars.PatientRosterSheetName}, f.GetSheetList())
	rows, err := f.GetRows(constvars.PatientRosterSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "PID", rows[0][0])
	assert.Equal(t, "Timestamp", rows[0][len(rosterColumns)-1])
	assert.Equal(t, "101", rows[1][0])
	assert.Equal(t, "Alice Smith", rows[1][1])
	assert.Equal(t, "Glaucoma, Allergies", rows[1][9])
	assert.Equal(t, "Cataract (Left Eye): Cortical", rows[1][12])
	assert.Equal(t, "1", rows[1][13])
	assert.Equal(t, "2", rows[1][14])
	assert.Equal(t, "7", rows[2][0])
}

func TestPatientRosterExporterEmpty(t *testing.T) {
	data, err := NewPatientRosterExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(constvars.PatientRosterSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
