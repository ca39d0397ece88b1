package records

// Normalize turns one raw store mapping into a canonical PatientRecord. It
// accepts any input, including nil, and only ever substitutes defaults.
func Normalize(raw map[string]any) PatientRecord {
	return PatientRecord{
		PID:                   coerceText(lookup(raw, FieldPID)),
		Name:                  coerceText(lookup(raw, FieldName)),
		Age:                   coerceText(lookup(raw, FieldAge)),
		Sex:                   coerceText(lookup(raw, FieldSex)),
		PhoneNumber:           coerceText(lookup(raw, FieldPhoneNumber)),
		Location:              coerceText(lookup(raw, FieldLocation)),
		DOB:                   coerceText(lookup(raw, FieldDOB)),
		Address:               coerceText(lookup(raw, FieldAddress)),
		BloodGroup:            coerceText(lookup(raw, FieldBloodGroup)),
		MedicalHistory:        coerceTags(lookup(raw, FieldMedicalHistory)),
		VisionSymptoms:        coerceTags(lookup(raw, FieldVisionSymptoms)),
		LeftEyeCataractTypes:  coerceTags(lookup(raw, FieldLeftEyeCataractTypes)),
		RightEyeCataractTypes: coerceTags(lookup(raw, FieldRightEyeCataractTypes)),
		GradeLeft:             coerceText(lookup(raw, FieldGradeLeft)),
		GradeRight:            coerceText(lookup(raw, FieldGradeRight)),
		ImageURLs:             coerceTags(lookup(raw, FieldImageURLs)),
		Timestamp:             coerceText(lookup(raw, FieldTimestamp)),
	}
}

// NormalizeAll normalizes every value of a store snapshot keyed by PID,
// ordered the way the store orders its keys.
func NormalizeAll(snapshot map[string]map[string]any) []PatientRecord {
	keys := SortKeys(snapshot)
	result := make([]PatientRecord, 0, len(keys))
	for _, key := range keys {
		result = append(result, Normalize(snapshot[key]))
	}
	return result
}

func lookup(raw map[string]any, field string) any {
	if value, ok := raw[field]; ok && value != nil {
		return value
	}
	for _, alias := range fieldAliases[field] {
		if value, ok := raw[alias]; ok && value != nil {
			return value
		}
	}
	return nil
}
