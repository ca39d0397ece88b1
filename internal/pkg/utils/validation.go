package utils

import (
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/records"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRegex  = regexp.MustCompile(constvars.RegexPersonName)
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumber)
	locationRegex    = regexp.MustCompile(constvars.RegexLocation)
	patientIDRegex   = regexp.MustCompile(constvars.RegexPatientID)
)

func validatePersonName(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validateLocation(fl validator.FieldLevel) bool {
	return locationRegex.MatchString(fl.Field().String())
}

func validatePatientID(fl validator.FieldLevel) bool {
	return patientIDRegex.MatchString(fl.Field().String())
}

func validateSex(fl validator.FieldLevel) bool {
	return records.IsSex(fl.Field().String())
}

func validateMedicalHistory(fl validator.FieldLevel) bool {
	return records.IsMedicalHistory(fl.Field().String())
}

func validateVisionSymptom(fl validator.FieldLevel) bool {
	return records.IsVisionSymptom(fl.Field().String())
}

func validateCataractType(fl validator.FieldLevel) bool {
	return records.IsCataractType(fl.Field().String())
}
