package constvars

// Case lifecycle statuses. Transitions between them are owned by the case
// usecase; nothing else writes CaseStatus.
const (
	CaseStatusDraft             = "Draft"
	CaseStatusSubmitted         = "Submitted"
	CaseStatusUnderVerification = "Under_Verification"
	CaseStatusUnderReview       = "Under_Review"
	CaseStatusApproved          = "Approved"
	CaseStatusRejected          = "Rejected"
	CaseStatusReturned          = "Returned"
	CaseStatusClosed            = "Closed"
)

// Funding process categories.
const (
	ProcessTypeBRC = "BRC"
	ProcessTypeCIP = "CIP"
	ProcessTypeONC = "ONC"
	ProcessTypeGEN = "GEN"
)

// Committee decision outcomes. Pending and Deferred are recorded without a
// case status change.
const (
	CommitteeOutcomeApproved     = "Approved"
	CommitteeOutcomeRejected     = "Rejected"
	CommitteeOutcomeNeedMoreInfo = "Need_More_Info"
	CommitteeOutcomePending      = "Pending"
	CommitteeOutcomeDeferred     = "Deferred"
)

// Doctor review outcomes.
const (
	ReviewOutcomeApproved             = "Approved"
	ReviewOutcomeApprovedWithComments = "Approved_With_Comments"
	ReviewOutcomeReturned             = "Returned"
)

// Director settlement review decisions.
const (
	DirectorDecisionApproved = "Approved"
	DirectorDecisionReturned = "Returned"
)

// Settlement variance above this percentage requires a director review
// before the case may be closed.
const SettlementVarianceThresholdPct = 10.0

const CaseRefPrefix = "NFI"
