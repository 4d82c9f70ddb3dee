package cases

import (
	"context"
	"testing"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"caseflow-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type auditRecorderStub struct {
	events []models.AuditEvent
	fail   bool
}

func (s *auditRecorderStub) Record(ctx context.Context, event *models.AuditEvent) error {
	if s.fail {
		return assert.AnError
	}
	s.events = append(s.events, *event)
	return nil
}

type checklistStub struct {
	contracts.ChecklistUsecase
	ensured []string
}

func (s *checklistStub) EnsureChecklist(ctx context.Context, caseID, processType string) error {
	s.ensured = append(s.ensured, caseID)
	return nil
}

type intakeStub struct {
	contracts.IntakeUsecase
	readiness responses.SubmitReadiness
}

func (s *intakeStub) GetCaseSubmitReadiness(ctx context.Context, caseID string) (*responses.SubmitReadiness, error) {
	readiness := s.readiness
	return &readiness, nil
}

type reviewStub struct {
	contracts.ReviewUsecase
	gate responses.ReviewGate
}

func (s *reviewStub) CanSendToCommittee(ctx context.Context, caseID string) (*responses.ReviewGate, error) {
	gate := s.gate
	return &gate, nil
}

type caseFixture struct {
	usecase contracts.CaseUsecase
	repo    contracts.CaseRepository
	intake  *intakeStub
	review  *reviewStub
	audit   *auditRecorderStub
}

func newCaseFixture() *caseFixture {
	repo := NewCaseLocalRepository()
	audit := &auditRecorderStub{}
	intake := &intakeStub{readiness: responses.SubmitReadiness{
		CanSubmit: true, FundAppComplete: true, InterimComplete: true, DocumentsReady: true,
		MissingSections: []string{}, MissingDocuments: []string{},
		Checklist: responses.ChecklistReadiness{MandatoryTotal: 12, MandatoryComplete: 12, IsReady: true},
	}}
	review := &reviewStub{gate: responses.ReviewGate{Allowed: true}}
	uc := NewCaseUsecase(repo, intake, review, &checklistStub{}, audit)
	return &caseFixture{usecase: uc, repo: repo, intake: intake, review: review, audit: audit}
}

func hospitalSession() *models.Session {
	return &models.Session{UserID: "u-hospital", Role: constvars.RoleHospital, HospitalID: "hosp-1"}
}

func verifierSession() *models.Session {
	return &models.Session{UserID: "u-verifier", Role: constvars.RoleVerifier}
}

func committeeSession() *models.Session {
	return &models.Session{UserID: "u-committee", Role: constvars.RoleCommittee}
}

func createDraft(t *testing.T, f *caseFixture) *models.Case {
	t.Helper()
	caseModel, _, err := f.usecase.CreateCase(context.Background(), &requests.CreateCase{
		ProcessType: constvars.ProcessTypeGEN, HospitalID: "hosp-1",
		HospitalName: "City Hospital", PatientName: "A Patient",
	}, hospitalSession())
	assert.NoError(t, err)
	return caseModel
}

func advanceToVerification(t *testing.T, f *caseFixture) *models.Case {
	t.Helper()
	caseModel := createDraft(t, f)
	_, _, err := f.usecase.SubmitCase(context.Background(), caseModel.ID, hospitalSession())
	assert.NoError(t, err)
	result, _, err := f.usecase.StartVerification(context.Background(), caseModel.ID, verifierSession())
	assert.NoError(t, err)
	return result
}

func TestCreateCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a draft with a generated reference", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := createDraft(t, f)

		assert.Equal(t, constvars.CaseStatusDraft, caseModel.CaseStatus)
		assert.Regexp(t, `^NFI-\d{4}-[0-9A-F]{8}$`, caseModel.CaseRef)
		assert.Equal(t, "u-hospital", caseModel.CreatedBy)
		assert.Len(t, f.audit.events, 1)
		assert.Equal(t, constvars.AuditActionCaseCreated, f.audit.events[0].Action)
	})

	t.Run("materializes the checklist at creation", func(t *testing.T) {
		repo := NewCaseLocalRepository()
		checklist := &checklistStub{}
		uc := NewCaseUsecase(repo, &intakeStub{}, &reviewStub{}, checklist, &auditRecorderStub{})

		caseModel, _, err := uc.CreateCase(ctx, &requests.CreateCase{
			ProcessType: constvars.ProcessTypeBRC, HospitalID: "hosp-1",
			HospitalName: "City Hospital", PatientName: "A Patient",
		}, hospitalSession())
		assert.NoError(t, err)
		assert.Equal(t, []string{caseModel.ID}, checklist.ensured)
	})
}

func TestSubmitCase(t *testing.T) {
	ctx := context.Background()

	t.Run("draft submits without any readiness gate", func(t *testing.T) {
		f := newCaseFixture()
		f.intake.readiness = responses.SubmitReadiness{CanSubmit: false}
		caseModel := createDraft(t, f)

		result, _, err := f.usecase.SubmitCase(ctx, caseModel.ID, hospitalSession())
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusSubmitted, result.CaseStatus)
	})

	t.Run("returned case resubmits and clears the return fields", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := advanceToVerification(t, f)
		_, _, err := f.usecase.ReturnToHospital(ctx, caseModel.ID, &requests.ReturnToHospital{Reason: "Missing documents", Comment: "upload the final bill"}, verifierSession())
		assert.NoError(t, err)

		result, _, err := f.usecase.SubmitCase(ctx, caseModel.ID, hospitalSession())
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusSubmitted, result.CaseStatus)
		assert.Empty(t, result.ReturnReason)
		assert.Empty(t, result.ReturnComment)
	})

	t.Run("other statuses cannot submit", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := advanceToVerification(t, f)

		_, _, err := f.usecase.SubmitCase(ctx, caseModel.ID, hospitalSession())
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestSendToCommittee(t *testing.T) {
	ctx := context.Background()

	t.Run("advances when both gates pass", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := advanceToVerification(t, f)

		result, _, err := f.usecase.SendToCommittee(ctx, caseModel.ID, verifierSession())
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusUnderReview, result.CaseStatus)
	})

	t.Run("itemizes every failing requirement across both gates", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := advanceToVerification(t, f)
		f.intake.readiness = responses.SubmitReadiness{
			CanSubmit:        false,
			MissingSections:  []string{"Fund Application: Declarations"},
			MissingDocuments: []string{constvars.DocTypeConsentForm, constvars.DocTypeFinalBill},
			Checklist:        responses.ChecklistReadiness{MandatoryTotal: 12, MandatoryComplete: 10},
		}
		f.review.gate = responses.ReviewGate{Allowed: false, Reason: constvars.ErrClientReviewNotAssigned}

		_, _, err := f.usecase.SendToCommittee(ctx, caseModel.ID, verifierSession())
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Len(t, customErr.Reasons, 4)
		assert.Contains(t, customErr.Reasons, "Incomplete section: Fund Application: Declarations")
		assert.Contains(t, customErr.Reasons, constvars.ErrClientReviewNotAssigned)
	})

	t.Run("a passing checklist cannot compensate for a blocked review", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := advanceToVerification(t, f)
		f.review.gate = responses.ReviewGate{Allowed: false, Reason: "Clinical review returned the case for revisions"}

		_, _, err := f.usecase.SendToCommittee(ctx, caseModel.ID, verifierSession())
		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, []string{"Clinical review returned the case for revisions"}, customErr.Reasons)
	})

	t.Run("only a case under verification can be sent", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := createDraft(t, f)

		_, _, err := f.usecase.SendToCommittee(ctx, caseModel.ID, verifierSession())
		assert.Error(t, err)
	})
}

func TestSubmitCommitteeDecision(t *testing.T) {
	ctx := context.Background()

	decide := func(t *testing.T, f *caseFixture, caseID, outcome string) (*models.Case, error) {
		t.Helper()
		result, _, err := f.usecase.SubmitCommitteeDecision(ctx, caseID, &requests.SubmitCommitteeDecision{
			Outcome: outcome, Comments: "committee notes",
		}, committeeSession())
		return result, err
	}

	underReview := func(t *testing.T, f *caseFixture) *models.Case {
		t.Helper()
		caseModel := advanceToVerification(t, f)
		result, _, err := f.usecase.SendToCommittee(ctx, caseModel.ID, verifierSession())
		assert.NoError(t, err)
		return result
	}

	t.Run("approved moves the case to approved", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := underReview(t, f)

		result, err := decide(t, f, caseModel.ID, constvars.CommitteeOutcomeApproved)
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusApproved, result.CaseStatus)
		assert.Equal(t, "u-committee", result.CommitteeDecision.DecidedBy)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := underReview(t, f)

		result, err := decide(t, f, caseModel.ID, constvars.CommitteeOutcomeRejected)
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusRejected, result.CaseStatus)
		assert.True(t, result.IsTerminal())
	})

	t.Run("need more info returns the case to the hospital", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := underReview(t, f)

		result, err := decide(t, f, caseModel.ID, constvars.CommitteeOutcomeNeedMoreInfo)
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusReturned, result.CaseStatus)
		assert.Equal(t, constvars.CommitteeOutcomeNeedMoreInfo, result.ReturnReason)
	})

	t.Run("pending and deferred record the decision without moving the case", func(t *testing.T) {
		for _, outcome := range []string{constvars.CommitteeOutcomePending, constvars.CommitteeOutcomeDeferred} {
			f := newCaseFixture()
			caseModel := underReview(t, f)

			result, err := decide(t, f, caseModel.ID, outcome)
			assert.NoError(t, err)
			assert.Equal(t, constvars.CaseStatusUnderReview, result.CaseStatus, "outcome %s must not move the case", outcome)
			assert.Equal(t, outcome, result.CommitteeDecision.Outcome)
		}
	})

	t.Run("a deferred case accepts a later conclusive decision", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := underReview(t, f)

		_, err := decide(t, f, caseModel.ID, constvars.CommitteeOutcomeDeferred)
		assert.NoError(t, err)
		result, err := decide(t, f, caseModel.ID, constvars.CommitteeOutcomeApproved)
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusApproved, result.CaseStatus)
	})
}

func TestListCases(t *testing.T) {
	ctx := context.Background()

	t.Run("hospital users are scoped to their own hospital", func(t *testing.T) {
		f := newCaseFixture()
		createDraft(t, f)

		other, _, err := f.usecase.CreateCase(ctx, &requests.CreateCase{
			ProcessType: constvars.ProcessTypeGEN, HospitalID: "hosp-2",
			HospitalName: "Other Hospital", PatientName: "B Patient",
		}, &models.Session{UserID: "u2", Role: constvars.RoleHospital, HospitalID: "hosp-2"})
		assert.NoError(t, err)

		result, err := f.usecase.ListCases(ctx, &requests.ListCases{HospitalID: other.HospitalID}, hospitalSession())
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "hosp-1", result[0].HospitalID)
	})

	t.Run("admins may filter freely", func(t *testing.T) {
		f := newCaseFixture()
		createDraft(t, f)

		result, err := f.usecase.ListCases(ctx, &requests.ListCases{}, &models.Session{UserID: "u-admin", Role: constvars.RoleAdmin})
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestAuditSoftFailure(t *testing.T) {
	t.Run("state change survives an audit outage", func(t *testing.T) {
		f := newCaseFixture()
		caseModel := createDraft(t, f)
		f.audit.fail = true

		result, auditFailed, err := f.usecase.SubmitCase(context.Background(), caseModel.ID, hospitalSession())
		assert.NoError(t, err)
		assert.True(t, auditFailed)
		assert.Equal(t, constvars.CaseStatusSubmitted, result.CaseStatus)

		stored, err := f.repo.FindByID(context.Background(), caseModel.ID)
		assert.NoError(t, err)
		assert.Equal(t, constvars.CaseStatusSubmitted, stored.CaseStatus)
	})
}
