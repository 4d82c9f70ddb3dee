package settlements

import (
	"context"
	"testing"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type caseRepoStub struct {
	contracts.CaseRepository
	cases map[string]*models.Case
}

func (s *caseRepoStub) FindByID(ctx context.Context, caseID string) (*models.Case, error) {
	caseModel, ok := s.cases[caseID]
	if !ok {
		return nil, nil
	}
	clone := *caseModel
	return &clone, nil
}

func (s *caseRepoStub) UpdateCase(ctx context.Context, caseModel *models.Case) error {
	clone := *caseModel
	s.cases[caseModel.ID] = &clone
	return nil
}

type auditRecorderStub struct {
	events []models.AuditEvent
}

func (s *auditRecorderStub) Record(ctx context.Context, event *models.AuditEvent) error {
	s.events = append(s.events, *event)
	return nil
}

func fp(v float64) *float64 { return &v }

func newSettlementFixture(status string) (contracts.SettlementUsecase, *caseRepoStub, *auditRecorderStub) {
	cases := &caseRepoStub{cases: map[string]*models.Case{
		"case-1": {ID: "case-1", CaseRef: "NFI-2026-0001", CaseStatus: status, ProcessType: constvars.ProcessTypeGEN},
	}}
	audit := &auditRecorderStub{}
	uc := NewSettlementUsecase(NewSettlementLocalRepository(), cases, audit)
	return uc, cases, audit
}

func adminSession() *models.Session {
	return &models.Session{UserID: "u-admin", Role: constvars.RoleAdmin}
}

func leadershipSession() *models.Session {
	return &models.Session{UserID: "u-director", Role: constvars.RoleLeadership}
}

func TestComputeVariance(t *testing.T) {
	t.Run("exactly the threshold is not flagged", func(t *testing.T) {
		pct, flagged := ComputeVariance(fp(110000), fp(100000))
		assert.NotNil(t, pct)
		assert.Equal(t, 10.0, *pct)
		assert.False(t, flagged)
	})

	t.Run("just over the threshold is flagged", func(t *testing.T) {
		pct, flagged := ComputeVariance(fp(111000), fp(100000))
		assert.Equal(t, 11.0, *pct)
		assert.True(t, flagged)
	})

	t.Run("underruns count the same as overruns", func(t *testing.T) {
		pct, flagged := ComputeVariance(fp(85000), fp(100000))
		assert.Equal(t, 15.0, *pct)
		assert.True(t, flagged)
	})

	t.Run("rounds to one decimal place", func(t *testing.T) {
		pct, _ := ComputeVariance(fp(100125), fp(100000))
		assert.Equal(t, 0.1, *pct)
	})

	t.Run("missing or zero reference is undefined and never flagged", func(t *testing.T) {
		pct, flagged := ComputeVariance(fp(100000), nil)
		assert.Nil(t, pct)
		assert.False(t, flagged)

		pct, flagged = ComputeVariance(fp(100000), fp(0))
		assert.Nil(t, pct)
		assert.False(t, flagged)

		pct, flagged = ComputeVariance(nil, fp(100000))
		assert.Nil(t, pct)
		assert.False(t, flagged)
	})
}

func TestSaveSettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("only approved cases accept settlement data", func(t *testing.T) {
		for _, status := range []string{constvars.CaseStatusDraft, constvars.CaseStatusUnderReview} {
			uc, _, _ := newSettlementFixture(status)
			_, _, err := uc.SaveSettlement(ctx, "case-1", &requests.SaveSettlement{FinalBillAmount: fp(1000)}, adminSession())
			assert.Error(t, err, "status %s should reject settlement writes", status)
		}
	})

	t.Run("a closed case rejects settlement writes outright", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusClosed)
		_, _, err := uc.SaveSettlement(ctx, "case-1", &requests.SaveSettlement{FinalBillAmount: fp(1000)}, adminSession())
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("partial patches keep earlier amounts and recompute variance", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusApproved)

		_, _, err := uc.SaveSettlement(ctx, "case-1", &requests.SaveSettlement{ReferenceAmount: fp(100000)}, adminSession())
		assert.NoError(t, err)

		result, _, err := uc.SaveSettlement(ctx, "case-1", &requests.SaveSettlement{FinalBillAmount: fp(120000)}, adminSession())
		assert.NoError(t, err)
		assert.Equal(t, 100000.0, *result.ReferenceAmount)
		assert.Equal(t, 20.0, *result.VariancePct)
		assert.True(t, result.VarianceFlag)
	})

	t.Run("variance is undefined until both amounts exist", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusApproved)

		result, _, err := uc.SaveSettlement(ctx, "case-1", &requests.SaveSettlement{FinalBillAmount: fp(50000)}, adminSession())
		assert.NoError(t, err)
		assert.Nil(t, result.VariancePct)
		assert.False(t, result.VarianceFlag)
	})
}

func TestSubmitDirectorReview(t *testing.T) {
	ctx := context.Background()

	t.Run("returned decision requires comments", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusApproved)

		_, _, err := uc.SubmitDirectorReview(ctx, "case-1", &requests.SubmitDirectorReview{Decision: constvars.DirectorDecisionReturned}, leadershipSession())
		assert.Error(t, err)

		_, _, err = uc.SubmitDirectorReview(ctx, "case-1", &requests.SubmitDirectorReview{Decision: constvars.DirectorDecisionReturned, Comments: "re-check other payers"}, leadershipSession())
		assert.NoError(t, err)
	})

	t.Run("approval records the decision on the settlement", func(t *testing.T) {
		uc, _, audit := newSettlementFixture(constvars.CaseStatusApproved)

		result, auditFailed, err := uc.SubmitDirectorReview(ctx, "case-1", &requests.SubmitDirectorReview{Decision: constvars.DirectorDecisionApproved}, leadershipSession())
		assert.NoError(t, err)
		assert.False(t, auditFailed)
		assert.Equal(t, constvars.DirectorDecisionApproved, result.DirectorReview.Decision)
		assert.Equal(t, "u-director", result.DirectorReview.DecidedBy)
		assert.Len(t, audit.events, 1)
	})
}

func TestCloseCaseWithSettlement(t *testing.T) {
	ctx := context.Background()

	saveFull := func(t *testing.T, uc contracts.SettlementUsecase, finalBill float64) {
		t.Helper()
		_, _, err := uc.SaveSettlement(ctx, "case-1", &requests.SaveSettlement{
			ReferenceAmount: fp(100000),
			FinalBillAmount: fp(finalBill),
			NfiPaidAmount:   fp(60000),
			OtherPaidAmount: fp(20000),
		}, adminSession())
		assert.NoError(t, err)
	}

	t.Run("closes when amounts are complete and variance is tolerable", func(t *testing.T) {
		uc, cases, _ := newSettlementFixture(constvars.CaseStatusApproved)
		saveFull(t, uc, 105000)

		result, auditFailed, err := uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.NoError(t, err)
		assert.False(t, auditFailed)
		assert.NotNil(t, result.ClosedAt)
		assert.Equal(t, "u-admin", result.ClosedBy)

		closed := cases.cases["case-1"]
		assert.Equal(t, constvars.CaseStatusClosed, closed.CaseStatus)
		assert.NotNil(t, closed.ClosureDate)
	})

	t.Run("incomplete amounts block closure with a named reason", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusApproved)
		_, _, err := uc.SaveSettlement(ctx, "case-1", &requests.SaveSettlement{
			ReferenceAmount: fp(100000), FinalBillAmount: fp(105000),
		}, adminSession())
		assert.NoError(t, err)

		_, _, err = uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.NotEmpty(t, customErr.Reasons)
	})

	t.Run("flagged variance blocks until the director approves", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusApproved)
		saveFull(t, uc, 125000)

		_, _, err := uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.Error(t, err)

		_, _, err = uc.SubmitDirectorReview(ctx, "case-1", &requests.SubmitDirectorReview{Decision: constvars.DirectorDecisionApproved}, leadershipSession())
		assert.NoError(t, err)

		_, _, err = uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.NoError(t, err)
	})

	t.Run("a returned director decision does not open the gate", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusApproved)
		saveFull(t, uc, 125000)

		_, _, err := uc.SubmitDirectorReview(ctx, "case-1", &requests.SubmitDirectorReview{Decision: constvars.DirectorDecisionReturned, Comments: "explain the overrun"}, leadershipSession())
		assert.NoError(t, err)

		_, _, err = uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.Error(t, err)
	})

	t.Run("only an approved case can be closed", func(t *testing.T) {
		uc, cases, _ := newSettlementFixture(constvars.CaseStatusUnderReview)

		_, _, err := uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidTransition, err.(*exceptions.CustomError).ClientMessage)
		assert.Equal(t, constvars.CaseStatusUnderReview, cases.cases["case-1"].CaseStatus)
	})

	t.Run("closing twice is a conflict", func(t *testing.T) {
		uc, _, _ := newSettlementFixture(constvars.CaseStatusApproved)
		saveFull(t, uc, 100000)

		_, _, err := uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.NoError(t, err)

		_, _, err = uc.CloseCaseWithSettlement(ctx, "case-1", adminSession())
		assert.Error(t, err)
	})
}
