package constvars

type contextKey string

const (
	CONTEXT_SESSION_DATA_KEY         contextKey = "sessionData"
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
)

// User roles.
const (
	RoleHospital   = "Hospital"
	RoleVerifier   = "Verifier"
	RoleDoctor     = "Doctor"
	RoleCommittee  = "Committee"
	RoleAdmin      = "Admin"
	RoleLeadership = "Leadership"
)

// Mongo collections.
const (
	MongoCollectionCases       = "cases"
	MongoCollectionChecklists  = "document_checklists"
	MongoCollectionFundApps    = "intake_fund_applications"
	MongoCollectionInterims    = "intake_interim_summaries"
	MongoCollectionReviews     = "doctor_reviews"
	MongoCollectionSettlements = "settlements"
	MongoCollectionAuditEvents = "audit_events"
	MongoCollectionUsers       = "users"
)

// Storage providers selectable via STORAGE_PROVIDER.
const (
	StorageProviderMongo = "mongo"
	StorageProviderLocal = "local"
)

// Audit actions.
const (
	AuditActionCaseCreated        = "case_created"
	AuditActionCaseSubmitted      = "case_submitted"
	AuditActionVerificationStart  = "verification_started"
	AuditActionSentToCommittee    = "sent_to_committee"
	AuditActionReturnedToHospital = "returned_to_hospital"
	AuditActionCommitteeDecision  = "committee_decision"
	AuditActionDocumentUploaded   = "document_uploaded"
	AuditActionDocumentStatusSet  = "document_status_set"
	AuditActionDocumentUnverified = "document_unverified"
	AuditActionIntakeSaved        = "intake_saved"
	AuditActionReviewerAssigned   = "reviewer_assigned"
	AuditActionReviewSubmitted    = "review_submitted"
	AuditActionSettlementSaved    = "settlement_saved"
	AuditActionDirectorReview     = "director_review_submitted"
	AuditActionCaseClosed         = "case_closed"
)

// Logging field keys.
const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
