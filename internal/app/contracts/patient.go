package contracts

import (
	"cataractcare-service/internal/pkg/dto/requests"
	"cataractcare-service/internal/pkg/dto/responses"
	"context"
)

type PatientUsecase interface {
	FindByPID(ctx context.Context, pid string) (*responses.Patient, error)
	FindAll(ctx context.Context, search string) ([]responses.Patient, error)
	Intake(ctx context.Context, pid string, request *requests.IntakePatient) (*responses.Patient, error)
	Edit(ctx context.Context, pid string, request requests.EditPatient) (*responses.Patient, error)
	UploadImage(ctx context.Context, request *requests.UploadPatientImage) (*responses.PatientImages, error)
	FindImages(ctx context.Context, pid string) (*responses.PatientImages, error)
	RenderReport(ctx context.Context, pid string) ([]byte, error)
	ArchiveReport(ctx context.Context, pid string) (*responses.PatientReport, error)
	ExportRoster(ctx context.Context, search string) ([]byte, error)
	Import(ctx context.Context, key string, raw map[string]interface{}) error
	Vocabularies(ctx context.Context) *responses.Vocabularies
}

// PatientRepository is the key-by-PID record store. Documents come back as
// raw mappings; callers run them through the normalizer.
type PatientRepository interface {
	FindByPID(ctx context.Context, pid string) (map[string]interface{}, bool, error)
	FindAll(ctx context.Context) (map[string]map[string]interface{}, error)
	Update(ctx context.Context, pid string, patch map[string]interface{}) error
}

type PatientEventPublisher interface {
	Publish(ctx context.Context, event *requests.PatientRecordEvent) error
}

type PatientReportRenderer interface {
	Render(ctx context.Context, patient *responses.Patient) ([]byte, error)
}

type PatientRosterExporter interface {
	Export(patients []responses.Patient) ([]byte, error)
}
