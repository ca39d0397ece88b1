package records

var (
	MedicalHistoryOptions = []string{
		"Nearsightedness",
		"Farsightedness",
		"Astigmatism",
		"Glaucoma",
		"Inflammation",
		"Allergies",
		"Dry eye syndrome",
		"Diabetic retinopathy",
		"Vitreous detachment",
		"None",
	}

	VisionSymptomOptions = []string{
		"Blurred Vision",
		"Cloudy or Dimmed Vision",
		"Glare",
		"Double Vision",
		"Reduced Night Vision",
		"Poor Contrast Sensitivity",
		"Difficulty with Reading and Near Vision",
		"None",
	}

	CataractTypeOptions = []string{
		"Normal",
		"Cortical",
		"MC",
		"PSC",
		"Nuclear",
	}

	SexOptions = []string{
		"Male",
		"Female",
		"Others",
	}
)

func IsMedicalHistory(tag string) bool { return contains(MedicalHistoryOptions, tag) }

func IsVisionSymptom(tag string) bool { return contains(VisionSymptomOptions, tag) }

func IsCataractType(tag string) bool { return contains(CataractTypeOptions, tag) }

func IsSex(value string) bool { return contains(SexOptions, value) }

// Toggle adds tag when it is missing and removes it when present. The input
// is left untouched.
func Toggle(tags []string, tag string) []string {
	result := make([]string, 0, len(tags)+1)
	removed := false
	for _, existing := range tags {
		if existing == tag && !removed {
			removed = true
			continue
		}
		result = append(result, existing)
	}
	if !removed {
		result = append(result, tag)
	}
	return result
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
