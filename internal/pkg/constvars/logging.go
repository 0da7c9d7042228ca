package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingHMSUrlKey         = "hms_url"
	LoggingResourceKey       = "resource"
	LoggingResourceIDKey     = "resource_id"
	LoggingResultCountKey    = "result_count"
	LoggingGenerationKey     = "generation"
	LoggingRunIDKey          = "run_id"
	LoggingCacheKey          = "cache_key"
	LoggingQueueNameKey      = "queue_name"
	LoggingMutationActionKey = "mutation_action"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingErrorMessageKey   = "error_message"
)
