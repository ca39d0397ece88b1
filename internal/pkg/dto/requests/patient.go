package requests

import (
	"strings"
	"time"
)

// IntakePatient is the body of the intake form. Field names follow the
// record store so a validated intake can be written as-is.
type IntakePatient struct {
	Name                  string   `json:"name" validate:"required,person_name"`
	Age                   string   `json:"age" validate:"required,numeric"`
	Sex                   string   `json:"sex" validate:"required,sex"`
	PhoneNumber           string   `json:"phone_number" validate:"required,phone_number"`
	Location              string   `json:"location" validate:"required,location"`
	DOB                   string   `json:"dob" validate:"required"`
	Address               string   `json:"address" validate:"required"`
	BloodGroup            string   `json:"bloodGroup" validate:"required"`
	MedicalHistory        []string `json:"medicalHistory" validate:"required,min=1,dive,medical_history"`
	VisionSymptoms        []string `json:"visionSymptoms" validate:"required,min=1,dive,vision_symptom"`
	LeftEyeCataractTypes  []string `json:"leftEyeCataractTypes" validate:"omitempty,dive,cataract_type"`
	RightEyeCataractTypes []string `json:"rightEyeCataractTypes" validate:"omitempty,dive,cataract_type"`
	GradeLeft             string   `json:"grade_L" validate:"max=64"`
	GradeRight            string   `json:"grade_R" validate:"max=64"`
	ImageURLs             []string `json:"image_urls" validate:"omitempty,dive,omitempty,url"`
}

// Sanitize trims the free-text fields the way the intake form does before
// it validates them.
func (r *IntakePatient) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Age = strings.TrimSpace(r.Age)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Location = strings.TrimSpace(r.Location)
	r.DOB = strings.TrimSpace(r.DOB)
	r.Address = strings.TrimSpace(r.Address)
	r.BloodGroup = strings.TrimSpace(r.BloodGroup)
	r.GradeLeft = strings.TrimSpace(r.GradeLeft)
	r.GradeRight = strings.TrimSpace(r.GradeRight)
}

// EditPatient is a partial update keyed by record field name. Values are
// raw JSON values; they go through the normalizer before they are stored.
type EditPatient map[string]interface{}

type UploadPatientImage struct {
	PID         string
	Eye         string
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// PatientRecordEvent is published after every successful record write.
type PatientRecordEvent struct {
	Event      string    `json:"event"`
	PID        string    `json:"pid"`
	Fields     []string  `json:"fields"`
	OccurredAt time.Time `json:"occurred_at"`
}
