package exceptions

import (
	"cataractcare-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrInvalidFormat = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidFormat, source))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerPanic = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanic)
	}
	ErrTooManyRequests = func(err error, remoteAddr string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevServerRateLimited, remoteAddr))
	}
	ErrRequestTooLarge = func(err error, limit int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, constvars.ErrClientRequestTooLarge, fmt.Sprintf(constvars.ErrDevServerRequestTooLarge, limit))
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidAPIKey, constvars.ErrDevInvalidAPIKey)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}

	// Patient
	ErrPatientNotFound = func(err error, pid string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevPatientNotFound, pid))
	}
	ErrPatientLocked = func(err error, pid string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPatientBeingEdited, fmt.Sprintf(constvars.ErrDevPatientLocked, pid))
	}
	ErrPatientIDImmutable = func(err error, pid string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPatientIDImmutable, fmt.Sprintf(constvars.ErrDevPatientIDImmutable, pid))
	}
	ErrPatientInvalidEye = func(err error, eye string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidEye, fmt.Sprintf(constvars.ErrDevPatientInvalidEye, eye))
	}
	ErrPatientEmptyPatch = func(err error, pid string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevPatientEmptyPatch, pid))
	}
	ErrPatientUnknownField = func(err error, pid, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevPatientUnknownField, pid, field))
	}
	ErrPatientInvalidTag = func(err error, pid, tag, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientPatientInvalidTag, fmt.Sprintf(constvars.ErrDevPatientInvalidTag, pid, tag, field))
	}
	ErrPatientReportTemplate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToGenerateReport, constvars.ErrDevPatientReportTemplate)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBDecodeDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDecodeDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObjectPresignedURL, bucketName))
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrRabbitMQOpenChannel = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQOpenChannel)
	}

	// Report
	ErrChromePrintToPDF = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientFailedToGenerateReport, constvars.ErrDevChromePrintToPDF)
	}
	ErrSpreadsheetBuild = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSpreadsheetBuild)
	}
)

var ErrMissingRequestID = func(err error) *CustomError {
	return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
}
