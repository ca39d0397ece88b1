package report

import (
	"bytes"
	"cataractcare-service/internal/pkg/dto/responses"
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/records"
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/patient_report.html
var templateFS embed.FS

var patientReportTemplate = template.Must(
	template.New("patient_report.html").
		Funcs(template.FuncMap{"join": joinTags}).
		ParseFS(templateFS, "templates/patient_report.html"),
)

type reportView struct {
	records.PatientRecord
	Grades []records.GradePresentation
	Images []reportImage
}

type reportImage struct {
	URL string
	Eye string
}

// BuildPatientReportHTML renders the printable report page. Grade rows are
// listed right eye first and only when they have something to show.
func BuildPatientReportHTML(patient *responses.Patient) ([]byte, error) {
	view := reportView{PatientRecord: patient.PatientRecord}
	for _, grade := range []records.GradePresentation{patient.Grading.Right, patient.Grading.Left} {
		if grade.Shown() {
			view.Grades = append(view.Grades, grade)
		}
	}
	for i, url := range patient.ImageURLs {
		if url == "" {
			continue
		}
		view.Images = append(view.Images, reportImage{URL: url, Eye: records.EyeOfImage(i).Title()})
	}

	var buf bytes.Buffer
	if err := patientReportTemplate.Execute(&buf, view); err != nil {
		return nil, exceptions.ErrPatientReportTemplate(err)
	}
	return buf.Bytes(), nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
