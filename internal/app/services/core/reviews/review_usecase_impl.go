package reviews

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"caseflow-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type reviewUsecase struct {
	ReviewRepository contracts.ReviewRepository
	UserRepository   contracts.UserRepository
	CaseRepository   contracts.CaseRepository
	IntakeUsecase    contracts.IntakeUsecase
	AuditService     contracts.AuditService
}

func NewReviewUsecase(
	reviewRepository contracts.ReviewRepository,
	userRepository contracts.UserRepository,
	caseRepository contracts.CaseRepository,
	intakeUsecase contracts.IntakeUsecase,
	auditService contracts.AuditService,
) contracts.ReviewUsecase {
	return &reviewUsecase{
		ReviewRepository: reviewRepository,
		UserRepository:   userRepository,
		CaseRepository:   caseRepository,
		IntakeUsecase:    intakeUsecase,
		AuditService:     auditService,
	}
}

// GetDoctorReview returns an unassigned empty review when none exists so
// the UI always has a stable shape to render.
func (uc *reviewUsecase) GetDoctorReview(ctx context.Context, caseID string) (*models.DoctorReview, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	review, err := uc.ReviewRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		review = &models.DoctorReview{CaseID: caseID}
	}
	return review, nil
}

func (uc *reviewUsecase) AssignDoctorReviewer(ctx context.Context, caseID string, request *requests.AssignDoctorReviewer, session *models.Session) (*models.DoctorReview, bool, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel == nil {
		return nil, false, exceptions.ErrCaseNotFound(nil)
	}

	reviewer, err := uc.UserRepository.FindByID(ctx, request.ReviewerID)
	if err != nil {
		return nil, false, err
	}
	if reviewer == nil || !reviewer.Active || reviewer.Role != constvars.RoleDoctor {
		return nil, false, exceptions.ErrReviewerNotFound(nil)
	}

	review, err := uc.ReviewRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if review.IsSubmitted() {
		return nil, false, exceptions.ErrReviewAlreadySubmitted(nil)
	}
	if review == nil {
		review = &models.DoctorReview{ID: uuid.New().String(), CaseID: caseID}
	}

	now := time.Now().UTC()
	review.AssignedToUserID = reviewer.ID
	review.AssignedToName = reviewer.FullName
	review.AssignedAt = &now

	if err := uc.ReviewRepository.SaveReview(ctx, review); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionReviewerAssigned, reviewer.FullName)
	return review, auditFailed, nil
}

// SubmitDoctorReview accepts resubmission: a doctor may revise the outcome
// until the case leaves verification. Each submission refreshes the gating
// snapshot handed to the committee.
func (uc *reviewUsecase) SubmitDoctorReview(ctx context.Context, caseID string, request *requests.SubmitDoctorReview, session *models.Session) (*models.DoctorReview, bool, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel == nil {
		return nil, false, exceptions.ErrCaseNotFound(nil)
	}

	review, err := uc.ReviewRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if !review.IsAssigned() {
		return nil, false, exceptions.ErrReviewNotAssigned(nil)
	}
	if review.AssignedToUserID != session.UserID && !session.IsAdmin() {
		return nil, false, exceptions.ErrReviewWrongReviewer(nil)
	}

	readiness, err := uc.IntakeUsecase.GetCaseSubmitReadiness(ctx, caseID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	review.SubmittedAt = &now
	review.Outcome = request.Outcome
	review.Comments = request.Comments
	review.GatingSnapshot = &models.ReviewGatingSnapshot{
		CanSubmit:        readiness.CanSubmit,
		MissingSections:  readiness.MissingSections,
		MissingDocuments: readiness.MissingDocuments,
		CapturedAt:       now,
	}

	if err := uc.ReviewRepository.SaveReview(ctx, review); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionReviewSubmitted, request.Outcome)
	return review, auditFailed, nil
}

// CanSendToCommittee is the clinical half of the committee gate. It never
// errors on business grounds; the answer is the payload.
func (uc *reviewUsecase) CanSendToCommittee(ctx context.Context, caseID string) (*responses.ReviewGate, error) {
	review, err := uc.ReviewRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if !review.IsAssigned() {
		return &responses.ReviewGate{Allowed: false, Reason: constvars.ErrClientReviewNotAssigned}, nil
	}
	if !review.IsSubmitted() {
		return &responses.ReviewGate{Allowed: false, Reason: fmt.Sprintf("Clinical review by %s not yet submitted", review.AssignedToName)}, nil
	}
	if review.Outcome == constvars.ReviewOutcomeReturned {
		return &responses.ReviewGate{Allowed: false, Reason: "Clinical review returned the case for revisions"}, nil
	}
	return &responses.ReviewGate{Allowed: true}, nil
}

func (uc *reviewUsecase) record(ctx context.Context, session *models.Session, caseID, action, notes string) bool {
	err := uc.AuditService.Record(ctx, &models.AuditEvent{
		CaseID:    caseID,
		Timestamp: time.Now().UTC(),
		UserID:    session.UserID,
		UserRole:  session.Role,
		Action:    action,
		Notes:     notes,
	})
	return err != nil
}

// ListAvailableReviewers returns the active doctors a verifier can pick
// from when assigning a case.
func (uc *reviewUsecase) ListAvailableReviewers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindActiveByRole(ctx, constvars.RoleDoctor)
}
