package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetPatientSuccessMessage           = "get patient record successfully"
	GetPatientsSuccessMessage          = "get patient records successfully"
	CreatePatientSuccessMessage        = "patient record submitted successfully"
	UpdatePatientSuccessMessage        = "patient data updated successfully"
	UploadPatientImageSuccessMessage   = "patient image uploaded successfully"
	GetPatientImagesSuccessMessage     = "get patient images successfully"
	ArchivePatientReportSuccessMessage = "patient report generated successfully"
	GetVocabulariesSuccessMessage      = "get vocabularies successfully"
)
