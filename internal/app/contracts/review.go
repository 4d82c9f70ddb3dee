package contracts

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"context"
)

type ReviewRepository interface {
	FindByCaseID(ctx context.Context, caseID string) (*models.DoctorReview, error)
	SaveReview(ctx context.Context, review *models.DoctorReview) error
}

type ReviewUsecase interface {
	GetDoctorReview(ctx context.Context, caseID string) (*models.DoctorReview, error)
	AssignDoctorReviewer(ctx context.Context, caseID string, request *requests.AssignDoctorReviewer, session *models.Session) (result *models.DoctorReview, auditFailed bool, err error)
	SubmitDoctorReview(ctx context.Context, caseID string, request *requests.SubmitDoctorReview, session *models.Session) (result *models.DoctorReview, auditFailed bool, err error)
	CanSendToCommittee(ctx context.Context, caseID string) (*responses.ReviewGate, error)
	ListAvailableReviewers(ctx context.Context) ([]models.User, error)
}
