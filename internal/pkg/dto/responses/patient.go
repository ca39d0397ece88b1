package responses

import (
	"time"

	"cataractcare-service/internal/pkg/records"
)

type Patient struct {
	records.PatientRecord
	Grading PatientGrading `json:"grading"`
}

type PatientGrading struct {
	Left  records.GradePresentation `json:"left"`
	Right records.GradePresentation `json:"right"`
}

type PatientImages struct {
	PID   string   `json:"pid"`
	Left  []string `json:"left"`
	Right []string `json:"right"`
}

type PatientReport struct {
	PID        string    `json:"pid"`
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type Vocabularies struct {
	MedicalHistory []string `json:"medicalHistory"`
	VisionSymptoms []string `json:"visionSymptoms"`
	CataractTypes  []string `json:"cataractTypes"`
	Sex            []string `json:"sex"`
}
