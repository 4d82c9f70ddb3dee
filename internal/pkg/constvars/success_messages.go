package constvars

const (
	LoginSuccessMessage        = "Successfully logged in"
	LogoutSuccessMessage       = "Successfully logged out"
	RegisterUserSuccessMessage = "Successfully registered user"

	CreateCaseSuccessMessage        = "Successfully created case"
	GetCaseSuccessMessage           = "Successfully retrieved case"
	ListCasesSuccessMessage         = "Successfully retrieved cases"
	SubmitCaseSuccessMessage        = "Successfully submitted case"
	StartVerificationSuccessMessage = "Case moved to verification"
	SendToCommitteeSuccessMessage   = "Case sent to committee"
	ReturnToHospitalSuccessMessage  = "Case returned to hospital"
	CommitteeDecisionSuccessMessage = "Committee decision recorded"

	ListDocumentsSuccessMessage     = "Successfully retrieved case documents"
	UploadDocumentSuccessMessage    = "Successfully uploaded document"
	UpdateDocStatusSuccessMessage   = "Successfully updated document status"
	UnverifyDocumentSuccessMessage  = "Successfully unverified document"
	ChecklistReadinessSuccessMessage = "Successfully computed checklist readiness"

	GetIntakeSuccessMessage       = "Successfully retrieved intake data"
	SaveIntakeSuccessMessage      = "Successfully saved intake data"
	IntakeCompletenessSuccessMessage = "Successfully computed intake completeness"
	SubmitReadinessSuccessMessage = "Successfully computed submit readiness"

	GetReviewSuccessMessage      = "Successfully retrieved doctor review"
	ListReviewersSuccessMessage  = "Successfully retrieved available reviewers"
	AssignReviewerSuccessMessage = "Successfully assigned reviewer"
	SubmitReviewSuccessMessage   = "Successfully submitted doctor review"

	GetAuditTrailSuccessMessage = "Successfully retrieved case audit trail"

	GetSettlementSuccessMessage  = "Successfully retrieved settlement"
	SaveSettlementSuccessMessage = "Successfully saved settlement"
	DirectorReviewSuccessMessage = "Director review recorded"
	CloseCaseSuccessMessage      = "Case closed"

	AuditWarningMessage = "Saved, but audit log failed"
)
