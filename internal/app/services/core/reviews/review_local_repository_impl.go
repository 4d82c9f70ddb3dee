package reviews

import (
	"context"
	"sync"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
)

type ReviewLocalRepository struct {
	mu      sync.RWMutex
	reviews map[string]models.DoctorReview
}

func NewReviewLocalRepository() contracts.ReviewRepository {
	return &ReviewLocalRepository{
		reviews: make(map[string]models.DoctorReview),
	}
}

func (r *ReviewLocalRepository) FindByCaseID(ctx context.Context, caseID string) (*models.DoctorReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[caseID]
	if !ok {
		return nil, nil
	}
	clone := cloneReview(review)
	return &clone, nil
}

func (r *ReviewLocalRepository) SaveReview(ctx context.Context, review *models.DoctorReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[review.CaseID] = cloneReview(*review)
	return nil
}

func cloneReview(review models.DoctorReview) models.DoctorReview {
	clone := review
	if review.AssignedAt != nil {
		at := *review.AssignedAt
		clone.AssignedAt = &at
	}
	if review.SubmittedAt != nil {
		at := *review.SubmittedAt
		clone.SubmittedAt = &at
	}
	if review.GatingSnapshot != nil {
		snapshot := *review.GatingSnapshot
		snapshot.MissingSections = append([]string(nil), review.GatingSnapshot.MissingSections...)
		snapshot.MissingDocuments = append([]string(nil), review.GatingSnapshot.MissingDocuments...)
		clone.GatingSnapshot = &snapshot
	}
	return clone
}
