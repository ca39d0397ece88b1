package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"numeric":         "must be a number",
	"min":             "must contain at least %s item(s)",
	"max":             "maximum at %s characters long",
	"oneof":           "must be one of [%s]",
	"person_name":     "must contain only words, starting with a capital letter, and with subsequent words starting with capital letters",
	"phone_number":    "must start with 7, 8, or 9 and contain 10 digits",
	"location":        "can only contain numbers, letters, spaces, commas, slashes, periods, colons, and double quotes",
	"sex":             "must be one of [Male Female Others]",
	"medical_history": "must be a known medical history option",
	"vision_symptom":  "must be a known vision symptom option",
	"cataract_type":   "must be one of [Normal Cortical MC PSC Nuclear]",
	"patient_id":      "must contain only letters, digits, dashes and underscores",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientPatientNotFound               = "Data not found for this ID"
	ErrClientPatientBeingEdited            = "this patient is being edited by someone else, please try again"
	ErrClientPatientIDImmutable            = "patient ID cannot be changed"
	ErrClientPatientInvalidTag             = "one of the selected options is not allowed"
	ErrClientInvalidEye                    = "eye must be either 'left' or 'right'"
	ErrClientFailedToGenerateReport        = "Failed to generate PDF"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRequestTooLarge               = "request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidAPIKey            = "request carried an API key that does not match"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Patient messages
	ErrDevPatientNotFound       = "patient record %s not found in record store"
	ErrDevPatientLocked         = "patient record %s edit lock is held by another request"
	ErrDevPatientIDImmutable    = "patch tried to change pid of %s"
	ErrDevPatientInvalidEye     = "unknown eye value %q"
	ErrDevPatientEmptyPatch     = "patch for %s carries no fields"
	ErrDevPatientUnknownField   = "patch for %s carries unknown field %s"
	ErrDevPatientInvalidTag     = "patch for %s carries %q outside the %s vocabulary"
	ErrDevPatientReportTemplate = "failed to execute patient report template"

	// Database messages
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToDecodeDocument   = "failed to decode document from database"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisSetNX      = "failed to SETNX data into redis"
	ErrDevRedisExpire     = "failed to EXPIRE key in redis"
	ErrDevRedisUnlock     = "failed to release lock in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitMQ queue '%s'"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitMQ channel"

	// Report messages
	ErrDevChromePrintToPDF = "failed to print page to PDF with headless chrome"
	ErrDevSpreadsheetBuild = "failed to build spreadsheet"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "recovered from panic"
	ErrDevServerRateLimited      = "rate limit reached for %s"
	ErrDevServerRequestTooLarge  = "request body exceeds %d bytes"
	ErrDevMissingRequestID       = "request ID missing from context"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
