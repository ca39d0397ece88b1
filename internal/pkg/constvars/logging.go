package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingErrorTypeKey          = "error_type"
	LoggingBusinessEventKey      = "business_event"
	LoggingTimestampKey          = "timestamp"
	LoggingDataKey               = "data"
	LoggingPatientIDKey          = "pid"
	LoggingSearchTermKey         = "search_term"
	LoggingEyeKey                = "eye"
	LoggingFieldsKey             = "fields"
	LoggingEventKey              = "event"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectNameKey         = "object_name"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingRecordsCountKey       = "records_count"
	LoggingResponseCountKey      = "response_count"
	LoggingBytesKey              = "bytes"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
)
