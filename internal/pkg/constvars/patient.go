package constvars

const (
	MongoCollectionPatients = "patients"
)

const (
	RedisKeyPatientEditLockFormat = "patients:lock:%s"
)

const (
	PatientEventCreated    = "patient.record.created"
	PatientEventUpdated    = "patient.record.updated"
	PatientEventImageAdded = "patient.record.image_added"
)

const (
	PatientReportFileNameFormat   = "patient_report_%s.pdf"
	PatientReportObjectNameFormat = "reports/%s/patient_report_%s.pdf"
	PatientImageObjectNameFormat  = "images/%s/%s-%s%s"
	PatientRosterFileName         = "patient_roster.xlsx"
	PatientRosterSheetName        = "Patients"
)
