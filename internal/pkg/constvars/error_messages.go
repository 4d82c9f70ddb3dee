package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientTooManyLoginAttempts          = "Too many login attempts, please wait a moment"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"

	ErrClientCaseNotFound             = "Case not found"
	ErrClientDocumentNotFound         = "Document not found"
	ErrClientReviewerNotFound         = "Reviewer not found among active clinical reviewers"
	ErrClientSettlementNotFound       = "Settlement record not found"
	ErrClientUserNotFound             = "User not found"
	ErrClientInvalidTransition        = "This action is not allowed in the case's current status"
	ErrClientCaseAlreadyClosed        = "Case is already closed"
	ErrClientSubmitBlocked            = "Case cannot advance yet, missing requirements listed below"
	ErrClientClosureBlocked           = "Case cannot be closed yet"
	ErrClientVerifiedImmutable        = "A verified document can only be changed by an admin unverify"
	ErrClientMandatoryNA              = "Only an admin may mark a mandatory document as not applicable"
	ErrClientReviewNotAssigned        = "No clinical review assigned"
	ErrClientReviewWrongReviewer      = "Only the assigned reviewer may submit this review"
	ErrClientReviewAlreadyDone        = "The clinical review has already been submitted"
	ErrClientDirectorCommentsRequired = "Comments are required when returning a settlement"
	ErrClientInvalidDocStatus         = "Invalid document status"
	ErrClientInvalidOutcome           = "Invalid outcome value"
	ErrClientInvalidProcessType       = "Invalid process type"
	ErrClientCaseRefAlreadyExists     = "A case with this reference already exists"
	ErrClientUsernameAlreadyExists    = "A user with this username already exists"
)

// Developer messages.
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse request body as JSON"
	ErrDevCannotParseMultipart     = "cannot parse multipart form"
	ErrDevInvalidInput             = "invalid input"
	ErrDevInvalidCredentials       = "invalid credentials supplied"
	ErrDevAuthTokenMissing         = "authorization token missing"
	ErrDevAuthTokenInvalid         = "authorization token invalid or expired"
	ErrDevAuthGenerateToken        = "failed to generate token"
	ErrDevRoleTypeDoesntMatch      = "session role does not match required role"
	ErrDevLoginThrottled           = "login attempts throttled"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevCannotMarshalJSON        = "cannot marshal value to JSON"
	ErrDevCaseNotFound             = "case not found in storage"
	ErrDevDocumentNotFound         = "checklist entry not found in storage"
	ErrDevReviewerNotFound         = "reviewer not found in active doctor role set"
	ErrDevUserNotFound             = "user not found in storage"
	ErrDevInvalidCaseTransition    = "case status transition not in transition table"
	ErrDevCaseAlreadyClosed        = "case already closed"
	ErrDevGateBlocked              = "advance gate rejected the transition"
	ErrDevClosureGateBlocked       = "closure gate rejected the transition"
	ErrDevVerifiedImmutable        = "verified checklist entry is immutable"
	ErrDevMandatoryNotApplicable   = "mandatory entry cannot be marked not applicable by non-admin"
	ErrDevReviewNotAssigned        = "doctor review has no assigned reviewer"
	ErrDevReviewWrongReviewer      = "actor is not the assigned reviewer"
	ErrDevReviewAlreadyDone        = "doctor review already submitted"
	ErrDevDirectorCommentsRequired = "director return decision requires comments"
	ErrDevCaseRefAlreadyExists     = "caseRef already exists"
	ErrDevUsernameAlreadyExists    = "username already exists"

	ErrDevDBFailedToFindDocument    = "database failed to find document"
	ErrDevDBFailedToInsertDocument  = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "database failed to update document"
	ErrDevDBFailedToDeleteDocument  = "database failed to delete document"
	ErrDevDBFailedToIterateDocument = "database failed to iterate documents"
	ErrDevDBStringNotObjectID       = "identifier is not a valid object id"

	ErrDevRedisSet       = "redis failed to set key"
	ErrDevRedisGetNoData = "redis failed to get key %s"
	ErrDevRedisDelete    = "redis failed to delete key"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"
	ErrDevAuditPublishFailed        = "failed to publish audit event to queue"
	ErrDevAuditWriteFailed          = "failed to write audit event"

	ErrDevUnknown = "unknown"
)

// Validator message shaping, keyed by validation tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of: %s",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"email":    "must be a valid email address",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
}
