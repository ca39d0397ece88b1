package report

import (
	"cataractcare-service/internal/pkg/dto/responses"
	"cataractcare-service/internal/pkg/records"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportPatient(raw map[string]any) *responses.Patient {
	record := records.Normalize(raw)
	return &responses.Patient{
		PatientRecord: record,
		Grading: responses.PatientGrading{
			Left:  records.PresentGrade(record, records.EyeLeft),
			Right: records.PresentGrade(record, records.EyeRight),
		},
	}
}

func TestBuildPatientReportHTML(t *testing.T) {
	t.Run("Header And Fields", func(t *testing.T) {
		html, err := BuildPatientReportHTML(reportPatient(map[string]any{
			"pid":            "101",
			"name":           "Alice Smith",
			"bloodGroup":     "O+",
			"medicalHistory": []any{"Glaucoma", "Allergies"},
		}))

		require.NoError(t, err)
		page := string(html)
		assert.Contains(t, page, "<h1>CataractCare</h1>")
		assert.Contains(t, page, "<h2>Patient Report</h2>")
		assert.Contains(t, page, "<tr><th>PID:</th><td>101</td></tr>")
		assert.Contains(t, page, "<tr><th>Blood Group:</th><td>O&#43;</td></tr>")
		assert.Contains(t, page, "<td>Glaucoma, Allergies</td>")
		assert.NotContains(t, page, `class="grade"`)
		assert.NotContains(t, page, `class="images"`)
	})

	t.Run("Right Grade Before Left", func(t *testing.T) {
		html, err := BuildPatientReportHTML(reportPatient(map[string]any{
			"pid":                   "7",
			"grade_L":               "2",
			"leftEyeCataractTypes":  []any{"Cortical", "PSC"},
			"grade_R":               "Nuclear",
			"rightEyeCataractTypes": "Nuclear",
		}))

		require.NoError(t, err)
		page := string(html)
		right := strings.Index(page, "<th>Grade (Right Eye):</th><td>Nuclear</td>")
		left := strings.Index(page, "<th>Cataract (Left Eye):</th><td>Cortical, PSC</td>")
		assert.True(t, right >= 0)
		assert.True(t, left > right)
	})

	t.Run("Images Labelled By Position", func(t *testing.T) {
		html, err := BuildPatientReportHTML(reportPatient(map[string]any{
			"pid":        "7",
			"image_urls": []any{"https://img/l0.jpg", "", "https://img/l2.jpg", "https://img/r3.jpg"},
		}))

		require.NoError(t, err)
		page := string(html)
		assert.Contains(t, page, `<img src="https://img/l0.jpg" alt="Left eye"><p>Left</p>`)
		assert.Contains(t, page, `<img src="https://img/l2.jpg" alt="Left eye"><p>Left</p>`)
		assert.Contains(t, page, `<img src="https://img/r3.jpg" alt="Right eye"><p>Right</p>`)
		assert.Equal(t, 3, strings.Count(page, "<img "))
	})

	t.Run("Escapes Values", func(t *testing.T) {
		html, err := BuildPatientReportHTML(reportPatient(map[string]any{
			"pid":  "7",
			"name": "<script>alert(1)</script>",
		}))

		require.NoError(t, err)
		assert.NotContains(t, string(html), "<script>")
	})
}
