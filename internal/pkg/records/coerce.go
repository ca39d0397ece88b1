package records

import (
	"reflect"
	"sort"
	"strconv"
)

// maxIndexGap bounds how far an index-keyed mapping may be padded when it is
// turned back into a sequence.
const maxIndexGap = 1024

// textOf renders a scalar as text. ok is false for nil and for values that
// are not scalars (sequences, mappings, structs).
func textOf(value any) (text string, ok bool) {
	if value == nil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true
		}
	}
	return "", false
}

// coerceText is the scalar-field rule: anything that is not a scalar becomes
// the empty string.
func coerceText(value any) string {
	text, _ := textOf(value)
	return text
}

// coerceTags is the list-field rule shared by every sequence field.
func coerceTags(value any) []string {
	if value == nil {
		return []string{}
	}
	if text, ok := textOf(value); ok {
		if text == "" {
			return []string{}
		}
		return []string{text}
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return []string{}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		tags := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			tags[i] = coerceText(rv.Index(i).Interface())
		}
		return tags
	case reflect.Map:
		return indexMapTags(rv)
	}
	return []string{}
}

// indexMapTags handles sequences that were stored as {"0": .., "1": ..}.
// Mappings whose keys are not all indices are not sequences.
func indexMapTags(rv reflect.Value) []string {
	if rv.Type().Key().Kind() != reflect.String {
		return []string{}
	}

	byIndex := make(map[int]string, rv.Len())
	indices := make([]int, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		index, err := strconv.Atoi(iter.Key().String())
		if err != nil || index < 0 {
			return []string{}
		}
		byIndex[index] = coerceText(iter.Value().Interface())
		indices = append(indices, index)
	}
	if len(indices) == 0 {
		return []string{}
	}
	sort.Ints(indices)

	last := indices[len(indices)-1]
	if last-len(indices) > maxIndexGap {
		tags := make([]string, len(indices))
		for i, index := range indices {
			tags[i] = byIndex[index]
		}
		return tags
	}

	tags := make([]string, last+1)
	for index, text := range byIndex {
		tags[index] = text
	}
	return tags
}
