package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("person_name", validatePersonName)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("location", validateLocation)
	validate.RegisterValidation("sex", validateSex)
	validate.RegisterValidation("medical_history", validateMedicalHistory)
	validate.RegisterValidation("vision_symptom", validateVisionSymptom)
	validate.RegisterValidation("cataract_type", validateCataractType)
	validate.RegisterValidation("patient_id", validatePatientID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a tag list, e.g. a URL param.
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
