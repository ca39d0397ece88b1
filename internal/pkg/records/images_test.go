package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEyeImages(t *testing.T) {
	record := Normalize(map[string]any{
		"image_urls": []any{"l0", "r0", "l1", "", "l2"},
	})

	left, right := EyeImages(record)

	assert.Equal(t, []string{"l0", "l1", "l2"}, left)
	assert.Equal(t, []string{"r0"}, right)
	assert.Equal(t, EyeLeft, EyeOfImage(4))
	assert.Equal(t, EyeRight, EyeOfImage(3))
}

func TestPlaceImage(t *testing.T) {
	t.Run("Right Into Empty List", func(t *testing.T) {
		assert.Equal(t, []string{"", "r"}, PlaceImage(nil, EyeRight, "r"))
	})

	t.Run("Left Into Empty List", func(t *testing.T) {
		assert.Equal(t, []string{"l"}, PlaceImage([]string{}, EyeLeft, "l"))
	})

	t.Run("Fills Free Slot", func(t *testing.T) {
		assert.Equal(t, []string{"l0", "r0"}, PlaceImage([]string{"", "r0"}, EyeLeft, "l0"))
	})

	t.Run("Appends With Padding", func(t *testing.T) {
		urls := []string{"l0", "r0", "l1"}

		result := PlaceImage(urls, EyeLeft, "l2")

		assert.Equal(t, []string{"l0", "r0", "l1", "", "l2"}, result)
		assert.Equal(t, []string{"l0", "r0", "l1"}, urls, "input should be left untouched")
	})

	t.Run("Keeps Parity", func(t *testing.T) {
		urls := []string{}
		urls = PlaceImage(urls, EyeRight, "r0")
		urls = PlaceImage(urls, EyeRight, "r1")
		urls = PlaceImage(urls, EyeLeft, "l0")

		left, right := EyeImages(PatientRecord{ImageURLs: urls})
		assert.Equal(t, []string{"l0"}, left)
		assert.Equal(t, []string{"r0", "r1"}, right)
	})
}

func TestToggle(t *testing.T) {
	tags := []string{"Glaucoma"}

	added := Toggle(tags, "Allergies")
	assert.Equal(t, []string{"Glaucoma", "Allergies"}, added)

	removed := Toggle(added, "Glaucoma")
	assert.Equal(t, []string{"Allergies"}, removed)
	assert.Equal(t, []string{"Glaucoma"}, tags)
}

func TestVocabulary(t *testing.T) {
	assert.True(t, IsMedicalHistory("Dry eye syndrome"))
	assert.False(t, IsMedicalHistory("dry eye syndrome"))
	assert.True(t, IsVisionSymptom("Glare"))
	assert.True(t, IsVisionSymptom("None"))
	assert.True(t, IsMedicalHistory("None"))
	assert.True(t, IsCataractType("PSC"))
	assert.False(t, IsCataractType("Mature"))
	assert.True(t, IsSex("Others"))
}

func TestFieldAliases(t *testing.T) {
	assert.Equal(t, []string{"phoneNumber"}, FieldAliases(FieldPhoneNumber))
	assert.Empty(t, FieldAliases(FieldName))

	aliases := FieldAliases(FieldBloodGroup)
	aliases[0] = "changed"
	assert.Equal(t, []string{"blood_group"}, FieldAliases(FieldBloodGroup))
}
