package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"caseflow-service/internal/app/models"
	"caseflow-service/internal/app/services/core/cases"
	"caseflow-service/internal/pkg/constvars"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type failingAuditRepo struct {
	AuditLocalRepository
}

func (r *failingAuditRepo) InsertEvent(ctx context.Context, event *models.AuditEvent) error {
	return errors.New("insert failed")
}

func TestRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("record fills id and timestamp and persists the event", func(t *testing.T) {
		repo := NewAuditLocalRepository()
		svc, err := NewAuditService(repo, nil, "", zap.NewNop())
		assert.NoError(t, err)

		event := &models.AuditEvent{
			CaseID:   "case-1",
			UserID:   "user-1",
			UserRole: constvars.RoleVerifier,
			Action:   constvars.AuditActionVerificationStart,
		}
		assert.NoError(t, svc.Record(ctx, event))
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.Timestamp.IsZero())

		events, err := repo.FindByCaseID(ctx, "case-1")
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, constvars.AuditActionVerificationStart, events[0].Action)
	})

	t.Run("a repository failure is returned to the caller", func(t *testing.T) {
		svc, err := NewAuditService(&failingAuditRepo{}, nil, "", zap.NewNop())
		assert.NoError(t, err)

		err = svc.Record(ctx, &models.AuditEvent{CaseID: "case-1", Action: constvars.AuditActionCaseCreated})
		assert.Error(t, err)
	})

	t.Run("events for one case come back in chronological order", func(t *testing.T) {
		repo := NewAuditLocalRepository()
		svc, err := NewAuditService(repo, nil, "", zap.NewNop())
		assert.NoError(t, err)

		base := time.Now().UTC()
		assert.NoError(t, svc.Record(ctx, &models.AuditEvent{
			CaseID: "case-1", Action: constvars.AuditActionCaseSubmitted, Timestamp: base.Add(time.Minute),
		}))
		assert.NoError(t, svc.Record(ctx, &models.AuditEvent{
			CaseID: "case-1", Action: constvars.AuditActionCaseCreated, Timestamp: base,
		}))
		assert.NoError(t, svc.Record(ctx, &models.AuditEvent{
			CaseID: "case-2", Action: constvars.AuditActionCaseCreated, Timestamp: base,
		}))

		events, err := repo.FindByCaseID(ctx, "case-1")
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, constvars.AuditActionCaseCreated, events[0].Action)
		assert.Equal(t, constvars.AuditActionCaseSubmitted, events[1].Action)
	})
}

func TestGetCaseAuditTrail(t *testing.T) {
	ctx := context.Background()

	newTrailFixture := func(t *testing.T) (*auditUsecase, string) {
		t.Helper()
		auditRepo := NewAuditLocalRepository()
		caseRepo := cases.NewCaseLocalRepository()

		caseID := uuid.New().String()
		_, err := caseRepo.CreateCase(ctx, &models.Case{
			ID:         caseID,
			CaseRef:    "NFI-2026-DEADBEEF",
			HospitalID: "hospital-1",
			CaseStatus: constvars.CaseStatusDraft,
		})
		assert.NoError(t, err)
		assert.NoError(t, auditRepo.InsertEvent(ctx, &models.AuditEvent{
			ID: uuid.New().String(), CaseID: caseID, Action: constvars.AuditActionCaseCreated, Timestamp: time.Now().UTC(),
		}))

		return NewAuditUsecase(auditRepo, caseRepo).(*auditUsecase), caseID
	}

	t.Run("staff can read the trail of any case", func(t *testing.T) {
		uc, caseID := newTrailFixture(t)

		events, err := uc.GetCaseAuditTrail(ctx, caseID, &models.Session{Role: constvars.RoleVerifier})
		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("a hospital user only sees their own cases", func(t *testing.T) {
		uc, caseID := newTrailFixture(t)

		_, err := uc.GetCaseAuditTrail(ctx, caseID, &models.Session{Role: constvars.RoleHospital, HospitalID: "hospital-2"})
		assert.Error(t, err)

		events, err := uc.GetCaseAuditTrail(ctx, caseID, &models.Session{Role: constvars.RoleHospital, HospitalID: "hospital-1"})
		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("an unknown case returns not found", func(t *testing.T) {
		uc, _ := newTrailFixture(t)

		_, err := uc.GetCaseAuditTrail(ctx, uuid.New().String(), &models.Session{Role: constvars.RoleAdmin})
		assert.Error(t, err)
	})
}
