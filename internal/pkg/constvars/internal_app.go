package constvars

type ContextKey string

const (
	ResourcePatients     = "patients"
	ResourceVocabularies = "vocabularies"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "CTRCR_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Timestamp layout written by the intake form, millisecond ISO-8601 in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z"
