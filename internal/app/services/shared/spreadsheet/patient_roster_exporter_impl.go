package spreadsheet

import (
	"bytes"
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/dto/responses"
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/records"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

type rosterColumn struct {
	header string
	width  float64
	value  func(patient *responses.Patient) string
}

var rosterColumns = []rosterColumn{
	{"PID", 14, func(p *responses.Patient) string { return p.PID }},
	{"Name", 24, func(p *responses.Patient) string { return p.Name }},
	{"Age", 8, func(p *responses.Patient) string { return p.Age }},
	{"Sex", 10, func(p *responses.Patient) string { return p.Sex }},
	{"Phone Number", 16, func(p *responses.Patient) string { return p.PhoneNumber }},
	{"Location", 24, func(p *responses.Patient) string { return p.Location }},
	{"DOB", 14, func(p *responses.Patient) string { return p.DOB }},
	{"Address", 30, func(p *responses.Patient) string { return p.Address }},
	{"Blood Group", 12, func(p *responses.Patient) string { return p.BloodGroup }},
	{"Medical History", 30, func(p *responses.Patient) string { return strings.Join(p.MedicalHistory, ", ") }},
	{"Vision Symptoms", 30, func(p *responses.Patient) string { return strings.Join(p.VisionSymptoms, ", ") }},
	{"Right Eye", 26, func(p *responses.Patient) string { return gradeCell(p.Grading.Right) }},
	{"Left Eye", 26, func(p *responses.Patient) string { return gradeCell(p.Grading.Left) }},
	{"Right Eye Images", 10, func(p *responses.Patient) string {
		_, right := records.EyeImages(p.PatientRecord)
		return fmt.Sprint(len(right))
	}},
	{"Left Eye Images", 10, func(p *responses.Patient) string {
		left, _ := records.EyeImages(p.PatientRecord)
		return fmt.Sprint(len(left))
	}},
	{"Timestamp", 26, func(p *responses.Patient) string { return p.Timestamp }},
}

type patientRosterExporter struct{}

func NewPatientRosterExporter() contracts.PatientRosterExporter {
	return &patientRosterExporter{}
}

// Export writes one header row and one row per patient, in the given order.
func (e *patientRosterExporter) Export(patients []responses.Patient) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := constvars.PatientRosterSheetName
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}
	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}

	header := make([]interface{}, len(rosterColumns))
	for i, column := range rosterColumns {
		header[i] = column.header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, exceptions.ErrSpreadsheetBuild(err)
		}
		if err := f.SetColWidth(sheetName, name, name, column.width); err != nil {
			return nil, exceptions.ErrSpreadsheetBuild(err)
		}
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(rosterColumns), 1)
	if err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}

	for i := range patients {
		row := make([]interface{}, len(rosterColumns))
		for col, column := range rosterColumns {
			row[col] = column.value(&patients[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, exceptions.ErrSpreadsheetBuild(err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, exceptions.ErrSpreadsheetBuild(err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, exceptions.ErrSpreadsheetBuild(err)
	}
	return buf.Bytes(), nil
}

func gradeCell(grade records.GradePresentation) string {
	if !grade.Shown() {
		return ""
	}
	return grade.Label() + ": " + grade.Display()
}
