package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	// DefaultHMSBaseUrl is used when HMS_API_BASE_URL is not set.
	DefaultHMSBaseUrl = "http://localhost:5000/api"

	ReferenceCacheKeyPrefix  = "hms:reference:"
	SalaryApprovalLockPrefix = "hms:lock:salary-approve:"
	MutationEventsQueueName  = "hms_mutation_events"

	SalaryApprovalLockTTL = 30 * time.Second
)

// Reference refresh throttling, per client IP.
const (
	ReferenceRefreshBurst    = 3
	ReferenceRefreshInterval = 10 * time.Second
	ReferenceRefreshBlock    = 30 * time.Second
)

const (
	UrlParamID             = "id"
	UrlParamStaffID        = "staffId"
	UrlParamCalculationID  = "calculationId"
	QueryParamMonth        = "month"
	QueryParamYear         = "year"
	QueryParamClinicID     = "clinicId"
	QueryParamEnterpriseID = "enterpriseId"
	QueryParamPatientID    = "patientId"
	QueryParamVisitID      = "visitId"
	QueryParamResource     = "resource"
)
