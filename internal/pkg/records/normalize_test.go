package records

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Empty Mapping", func(t *testing.T) {
		record := Normalize(map[string]any{})

		expected := PatientRecord{
			MedicalHistory:        []string{},
			VisionSymptoms:        []string{},
			LeftEyeCataractTypes:  []string{},
			RightEyeCataractTypes: []string{},
			ImageURLs:             []string{},
		}
		assert.Equal(t, expected, record, "every scalar should be empty and every list an empty sequence")
	})

	t.Run("Nil Mapping", func(t *testing.T) {
		record := Normalize(nil)

		assert.NotNil(t, record.MedicalHistory)
		assert.NotNil(t, record.ImageURLs)
		assert.Equal(t, "", record.PID)
	})

	t.Run("Scalar Coerced To Singleton", func(t *testing.T) {
		record := Normalize(map[string]any{"medicalHistory": "Glaucoma"})

		assert.Equal(t, []string{"Glaucoma"}, record.MedicalHistory)
	})

	t.Run("Empty String List Field", func(t *testing.T) {
		record := Normalize(map[string]any{"visionSymptoms": ""})

		assert.Equal(t, []string{}, record.VisionSymptoms, "an empty string is treated as absent")
	})

	t.Run("Null Fields", func(t *testing.T) {
		record := Normalize(map[string]any{
			"name":                 nil,
			"leftEyeCataractTypes": nil,
		})

		assert.Equal(t, "", record.Name)
		assert.Equal(t, []string{}, record.LeftEyeCataractTypes)
	})

	t.Run("Numeric Scalars", func(t *testing.T) {
		record := Normalize(map[string]any{
			"pid": float64(101),
			"age": 42,
		})

		assert.Equal(t, "101", record.PID)
		assert.Equal(t, "42", record.Age)
	})

	t.Run("Unexpected Scalar Type", func(t *testing.T) {
		record := Normalize(map[string]any{
			"name":    []any{"Alice"},
			"address": map[string]any{"line": "x"},
		})

		assert.Equal(t, "", record.Name)
		assert.Equal(t, "", record.Address)
	})

	t.Run("Sequence Copied", func(t *testing.T) {
		history := []any{"Glaucoma", "Allergies"}
		record := Normalize(map[string]any{"medicalHistory": history})

		assert.Equal(t, []string{"Glaucoma", "Allergies"}, record.MedicalHistory)

		history[0] = "None"
		assert.Equal(t, "Glaucoma", record.MedicalHistory[0], "normalized record should not share the input slice")
	})

	t.Run("Null Elements Keep Image Parity", func(t *testing.T) {
		record := Normalize(map[string]any{
			"image_urls": []any{nil, "right-0"},
		})

		assert.Equal(t, []string{"", "right-0"}, record.ImageURLs)
	})

	t.Run("Index Mapping", func(t *testing.T) {
		record := Normalize(map[string]any{
			"image_urls": map[string]any{"0": "a", "1": "b", "3": "d"},
		})

		assert.Equal(t, []string{"a", "b", "", "d"}, record.ImageURLs)
	})

	t.Run("Non Index Mapping", func(t *testing.T) {
		record := Normalize(map[string]any{
			"medicalHistory": map[string]any{"first": "Glaucoma"},
		})

		assert.Equal(t, []string{}, record.MedicalHistory)
	})

	t.Run("Aliases", func(t *testing.T) {
		record := Normalize(map[string]any{
			"phoneNumber": "9876543210",
			"gradeLeft":   "2",
			"gradeRight":  "3",
			"imageUrls":   []string{"a"},
			"blood_group": "O+",
		})

		assert.Equal(t, "9876543210", record.PhoneNumber)
		assert.Equal(t, "2", record.GradeLeft)
		assert.Equal(t, "3", record.GradeRight)
		assert.Equal(t, []string{"a"}, record.ImageURLs)
		assert.Equal(t, "O+", record.BloodGroup)
	})

	t.Run("Wire Name Wins Over Alias", func(t *testing.T) {
		record := Normalize(map[string]any{
			"phone_number": "9000000000",
			"phoneNumber":  "8000000000",
		})

		assert.Equal(t, "9000000000", record.PhoneNumber)
	})

	t.Run("Decoded JSON Document", func(t *testing.T) {
		payload := []byte(`{
			"pid": 310,
			"name": "alice2",
			"sex": "Female",
			"medicalHistory": ["Glaucoma"],
			"rightEyeCataractTypes": "Nuclear",
			"grade_R": "Nuclear",
			"image_urls": ["l.jpg", "r.jpg"]
		}`)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(payload, &raw))

		record := Normalize(raw)

		assert.Equal(t, "310", record.PID)
		assert.Equal(t, []string{"Nuclear"}, record.RightEyeCataractTypes)
		assert.Equal(t, []string{"l.jpg", "r.jpg"}, record.ImageURLs)
		assert.Equal(t, []string{}, record.VisionSymptoms)
	})
}

func TestNormalizeRoundTrip(t *testing.T) {
	canonical := PatientRecord{
		PID:                   "101",
		Name:                  "Alice",
		Age:                   "64",
		Sex:                   "Female",
		PhoneNumber:           "9876543210",
		Location:              "Ward 3, Block A",
		DOB:                   "1960-01-02",
		Address:               "12 Lake Road",
		BloodGroup:            "B+",
		MedicalHistory:        []string{"Glaucoma", "Allergies"},
		VisionSymptoms:        []string{"Glare"},
		LeftEyeCataractTypes:  []string{"Cortical"},
		RightEyeCataractTypes: []string{},
		GradeLeft:             "2",
		GradeRight:            "",
		ImageURLs:             []string{"l.jpg", "r.jpg"},
		Timestamp:             "2024-03-01T10:00:00.000Z",
	}

	assert.Equal(t, canonical, Normalize(canonical.Raw()))
	assert.Equal(t, Normalize(map[string]any{}), Normalize(Normalize(map[string]any{}).Raw()))
}

func TestNormalizeAll(t *testing.T) {
	snapshot := map[string]map[string]any{
		"b":   {"pid": "b", "name": "Bee"},
		"20":  {"pid": "20", "name": "Twenty"},
		"3":   {"pid": "3", "name": "Three"},
		"a":   {"pid": "a", "name": "Ay"},
		"100": {"name": "No pid"},
	}

	result := NormalizeAll(snapshot)

	require.Len(t, result, 5)
	names := make([]string, len(result))
	for i, record := range result {
		names[i] = record.Name
	}
	assert.Equal(t, []string{"Three", "Twenty", "No pid", "Ay", "Bee"}, names)
	assert.Equal(t, "", result[2].PID, "a missing pid is not filled from the key")
}

func TestCanonicalField(t *testing.T) {
	field, ok := CanonicalField("phoneNumber")
	assert.True(t, ok)
	assert.Equal(t, FieldPhoneNumber, field)

	field, ok = CanonicalField(FieldGradeLeft)
	assert.True(t, ok)
	assert.Equal(t, FieldGradeLeft, field)

	_, ok = CanonicalField("cataractTypes")
	assert.False(t, ok)

	assert.True(t, IsTagField(FieldImageURLs))
	assert.False(t, IsTagField(FieldGradeRight))
}
