package users

import (
	"context"
	"sort"
	"sync"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
)

type UserLocalRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserLocalRepository() contracts.UserRepository {
	return &UserLocalRepository{
		users: make(map[string]models.User),
	}
}

func (r *UserLocalRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *UserLocalRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	clone := user
	return &clone, nil
}

func (r *UserLocalRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			clone := user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *UserLocalRepository) FindActiveByRole(ctx context.Context, role string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.User
	for _, user := range r.users {
		if user.Role == role && user.Active {
			result = append(result, user)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Username < result[j].Username
	})
	return result, nil
}
