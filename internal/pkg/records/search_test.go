package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []PatientRecord {
	return []PatientRecord{
		Normalize(map[string]any{"pid": "101", "name": "Alice"}),
		Normalize(map[string]any{"pid": "202", "name": "Bob"}),
		Normalize(map[string]any{"pid": "310", "name": "alice2"}),
	}
}

func TestSearch(t *testing.T) {
	t.Run("Empty Query Returns Input", func(t *testing.T) {
		records := sampleRecords()

		assert.Equal(t, records, Search(records, ""))
		assert.Equal(t, records, Search(records, "   "))
	})

	t.Run("Empty Query Keeps Unusable Records", func(t *testing.T) {
		records := append(sampleRecords(), Normalize(map[string]any{"name": "Nameless pid"}))

		assert.Len(t, Search(records, ""), 4)
	})

	t.Run("Case Insensitive Name", func(t *testing.T) {
		result := Search(sampleRecords(), "alice")

		assert.Len(t, result, 2)
		assert.Equal(t, "101", result[0].PID)
		assert.Equal(t, "310", result[1].PID)
	})

	t.Run("Uppercase Query On Name", func(t *testing.T) {
		result := Search(sampleRecords(), "BOB")

		assert.Len(t, result, 1)
		assert.Equal(t, "202", result[0].PID)
	})

	t.Run("PID Substring", func(t *testing.T) {
		result := Search(sampleRecords(), "0")

		assert.Len(t, result, 3)

		result = Search(sampleRecords(), "31")
		assert.Len(t, result, 1)
		assert.Equal(t, "310", result[0].PID)
	})

	t.Run("PID Is Case Sensitive", func(t *testing.T) {
		records := []PatientRecord{
			Normalize(map[string]any{"pid": "AB-1", "name": "Zed"}),
		}

		assert.Len(t, Search(records, "AB"), 1)
		assert.Empty(t, Search(records, "ab"))
	})

	t.Run("Records Without PID Or Name Never Match", func(t *testing.T) {
		records := []PatientRecord{
			Normalize(map[string]any{"name": "Alice"}),
			Normalize(map[string]any{"pid": "alice"}),
		}

		assert.Empty(t, Search(records, "alice"))
	})

	t.Run("Empty Input", func(t *testing.T) {
		result := Search([]PatientRecord{}, "x")

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("No Matches", func(t *testing.T) {
		result := Search(sampleRecords(), "zzz")

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestPresentable(t *testing.T) {
	records := []PatientRecord{
		Normalize(map[string]any{"pid": "1", "name": "Alice"}),
		Normalize(map[string]any{"pid": "2"}),
		Normalize(map[string]any{"name": "Ghost"}),
		Normalize(map[string]any{}),
	}

	result := Presentable(records)

	assert.Len(t, result, 1)
	assert.Equal(t, "1", result[0].PID)
}
