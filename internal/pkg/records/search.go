package records

import "strings"

// Search filters records by pid (case-sensitive substring) or name
// (case-insensitive substring), keeping their relative order. A blank query
// is no filter at all and returns the input as is.
func Search(records []PatientRecord, query string) []PatientRecord {
	if strings.TrimSpace(query) == "" {
		return records
	}

	lowered := strings.ToLower(query)
	matches := make([]PatientRecord, 0)
	for _, record := range records {
		if record.PID == "" || record.Name == "" {
			continue
		}
		if strings.Contains(record.PID, query) || strings.Contains(strings.ToLower(record.Name), lowered) {
			matches = append(matches, record)
		}
	}
	return matches
}

// Presentable drops records that cannot be shown in a list: both the pid and
// the name are needed to render a patient card.
func Presentable(records []PatientRecord) []PatientRecord {
	result := make([]PatientRecord, 0, len(records))
	for _, record := range records {
		if record.PID != "" && record.Name != "" {
			result = append(result, record)
		}
	}
	return result
}
