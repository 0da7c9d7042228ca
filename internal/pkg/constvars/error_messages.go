package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must be a date in %s format",
	"iso_date": "must be an ISO-8601 date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBackendUnavailable            = "the hospital backend is unavailable, please try again"
	ErrClientResourceNotFound              = "the requested data was not found"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRequestBodyTooLarge           = "the request body is too large"
	ErrClientRequestInProgress             = "this request is already being processed"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidationFailed = "url param '%s' must be a positive integer"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevReadHTTPResponse           = "failed to read HTTP response body"
	ErrDevHMSDecodeResponse          = "failed to decode %s response from HMS backend"
	ErrDevHMSUpstream                = "HMS backend rejected %s request"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue '%s'"
	ErrDevRabbitMQOpenChannel        = "failed to open rabbitmq channel"
	ErrDevUnknownReferenceResource   = "unknown reference resource '%s'"
	ErrDevAsyncProducerPanicked      = "async producer panicked: %v"
	ErrDevSalaryPeriodOutOfRange     = "salary period %d-%d is out of range"
	ErrDevSalaryApprovalInProgress   = "salary calculation %d is already being approved"
	ErrDevTooManyRequests            = "rate limit exceeded"
	ErrDevRequestBodyTooLarge        = "request body of %d bytes exceeds the limit"
)
