package utils

import (
	"cataractcare-service/internal/pkg/dto/requests"
	"cataractcare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validIntake() *requests.IntakePatient {
	return &requests.IntakePatient{
		Name:                 "Alice Smith",
		Age:                  "64",
		Sex:                  "Female",
		PhoneNumber:          "9876543210",
		Location:             "Ward 3, Block A/2",
		DOB:                  "1960-02-01",
		Address:              "12 Lake Road",
		BloodGroup:           "O+",
		MedicalHistory:       []string{"Glaucoma"},
		VisionSymptoms:       []string{"Glare", "Blurred Vision"},
		LeftEyeCataractTypes: []string{"Cortical"},
		GradeLeft:            "2",
	}
}

func TestValidateIntakePatient(t *testing.T) {
	t.Run("Valid Intake", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validIntake()))
	})

	t.Run("Patient Without History Or Symptoms", func(t *testing.T) {
		request := validIntake()
		request.MedicalHistory = []string{"None"}
		request.VisionSymptoms = []string{"None"}

		assert.NoError(t, ValidateStruct(request))
	})

	tests := []struct {
		name    string
		mutate  func(r *requests.IntakePatient)
		message string
	}{
		{
			name:    "Lowercase Name",
			mutate:  func(r *requests.IntakePatient) { r.Name = "alice smith" },
			message: "name must contain only words, starting with a capital letter, and with subsequent words starting with capital letters",
		},
		{
			name:    "Non Numeric Age",
			mutate:  func(r *requests.IntakePatient) { r.Age = "sixty" },
			message: "age must be a number",
		},
		{
			name:    "Phone Starting With Six",
			mutate:  func(r *requests.IntakePatient) { r.PhoneNumber = "6876543210" },
			message: "phone_number must start with 7, 8, or 9 and contain 10 digits",
		},
		{
			name:    "Short Phone",
			mutate:  func(r *requests.IntakePatient) { r.PhoneNumber = "98765" },
			message: "phone_number must start with 7, 8, or 9 and contain 10 digits",
		},
		{
			name:    "Location With Symbols",
			mutate:  func(r *requests.IntakePatient) { r.Location = "Ward #3" },
			message: "location can only contain numbers, letters, spaces, commas, slashes, periods, colons, and double quotes",
		},
		{
			name:    "Missing Blood Group",
			mutate:  func(r *requests.IntakePatient) { r.BloodGroup = "" },
			message: "bloodGroup is required",
		},
		{
			name:    "Empty Medical History",
			mutate:  func(r *requests.IntakePatient) { r.MedicalHistory = []string{} },
			message: "medicalHistory must contain at least 1 item(s)",
		},
		{
			name:    "Unknown Vision Symptom",
			mutate:  func(r *requests.IntakePatient) { r.VisionSymptoms = []string{"Itching"} },
			message: "visionSymptoms[0] must be a known vision symptom option",
		},
		{
			name:    "Unknown Cataract Type",
			mutate:  func(r *requests.IntakePatient) { r.RightEyeCataractTypes = []string{"Posterior"} },
			message: "rightEyeCataractTypes[0] must be one of [Normal Cortical MC PSC Nuclear]",
		},
		{
			name:    "Unknown Sex",
			mutate:  func(r *requests.IntakePatient) { r.Sex = "female" },
			message: "sex must be one of [Male Female Others]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validIntake()
			tt.mutate(request)

			err := ValidateStruct(request)

			assert.Error(t, err)
			assert.Equal(t, tt.message, exceptions.FormatFirstValidationError(err))
		})
	}
}

func TestValidatePatientID(t *testing.T) {
	assert.NoError(t, ValidateVar("PID-101_a", "required,patient_id"))
	assert.Error(t, ValidateVar("101/../x", "required,patient_id"))
	assert.Error(t, ValidateVar("", "required,patient_id"))
}
