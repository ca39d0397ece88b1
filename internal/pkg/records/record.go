package records

// Wire names of the record fields as the record store holds them.
const (
	FieldPID                   = "pid"
	FieldName                  = "name"
	FieldAge                   = "age"
	FieldSex                   = "sex"
	FieldPhoneNumber           = "phone_number"
	FieldLocation              = "location"
	FieldDOB                   = "dob"
	FieldAddress               = "address"
	FieldBloodGroup            = "bloodGroup"
	FieldMedicalHistory        = "medicalHistory"
	FieldVisionSymptoms        = "visionSymptoms"
	FieldLeftEyeCataractTypes  = "leftEyeCataractTypes"
	FieldRightEyeCataractTypes = "rightEyeCataractTypes"
	FieldGradeLeft             = "grade_L"
	FieldGradeRight            = "grade_R"
	FieldImageURLs             = "image_urls"
	FieldTimestamp             = "timestamp"
)

// fieldAliases lists alternate spellings seen from other producers. The wire
// name always wins when both are present.
var fieldAliases = map[string][]string{
	FieldPhoneNumber: {"phoneNumber"},
	FieldBloodGroup:  {"blood_group"},
	FieldGradeLeft:   {"gradeLeft"},
	FieldGradeRight:  {"gradeRight"},
	FieldImageURLs:   {"imageUrls"},
}

// PatientRecord is the canonical shape of one patient. List fields are never
// nil once a record has gone through Normalize.
type PatientRecord struct {
	PID                   string   `json:"pid"`
	Name                  string   `json:"name"`
	Age                   string   `json:"age"`
	Sex                   string   `json:"sex"`
	PhoneNumber           string   `json:"phone_number"`
	Location              string   `json:"location"`
	DOB                   string   `json:"dob"`
	Address               string   `json:"address"`
	BloodGroup            string   `json:"bloodGroup"`
	MedicalHistory        []string `json:"medicalHistory"`
	VisionSymptoms        []string `json:"visionSymptoms"`
	LeftEyeCataractTypes  []string `json:"leftEyeCataractTypes"`
	RightEyeCataractTypes []string `json:"rightEyeCataractTypes"`
	GradeLeft             string   `json:"grade_L"`
	GradeRight            string   `json:"grade_R"`
	ImageURLs             []string `json:"image_urls"`
	Timestamp             string   `json:"timestamp"`
}

// Raw returns the record as the mapping the store keeps. Normalize(r.Raw())
// yields r again for any canonical r.
func (r PatientRecord) Raw() map[string]any {
	return map[string]any{
		FieldPID:                   r.PID,
		FieldName:                  r.Name,
		FieldAge:                   r.Age,
		FieldSex:                   r.Sex,
		FieldPhoneNumber:           r.PhoneNumber,
		FieldLocation:              r.Location,
		FieldDOB:                   r.DOB,
		FieldAddress:               r.Address,
		FieldBloodGroup:            r.BloodGroup,
		FieldMedicalHistory:        cloneTags(r.MedicalHistory),
		FieldVisionSymptoms:        cloneTags(r.VisionSymptoms),
		FieldLeftEyeCataractTypes:  cloneTags(r.LeftEyeCataractTypes),
		FieldRightEyeCataractTypes: cloneTags(r.RightEyeCataractTypes),
		FieldGradeLeft:             r.GradeLeft,
		FieldGradeRight:            r.GradeRight,
		FieldImageURLs:             cloneTags(r.ImageURLs),
		FieldTimestamp:             r.Timestamp,
	}
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

var wireFields = []string{
	FieldPID, FieldName, FieldAge, FieldSex, FieldPhoneNumber, FieldLocation,
	FieldDOB, FieldAddress, FieldBloodGroup, FieldMedicalHistory,
	FieldVisionSymptoms, FieldLeftEyeCataractTypes, FieldRightEyeCataractTypes,
	FieldGradeLeft, FieldGradeRight, FieldImageURLs, FieldTimestamp,
}

// CanonicalField maps a wire name or one of its aliases to the wire name.
func CanonicalField(name string) (string, bool) {
	for _, field := range wireFields {
		if field == name {
			return field, true
		}
		for _, alias := range fieldAliases[field] {
			if alias == name {
				return field, true
			}
		}
	}
	return "", false
}

// FieldAliases returns the alternate spellings of a wire field.
func FieldAliases(field string) []string {
	return append([]string(nil), fieldAliases[field]...)
}

// IsTagField reports whether the wire field holds a tag sequence.
func IsTagField(field string) bool {
	switch field {
	case FieldMedicalHistory, FieldVisionSymptoms, FieldLeftEyeCataractTypes,
		FieldRightEyeCataractTypes, FieldImageURLs:
		return true
	}
	return false
}
