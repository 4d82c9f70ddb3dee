package auth

import (
	"context"
	"sync"
	"time"

	"caseflow-service/internal/app/config"
	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"caseflow-service/internal/pkg/exceptions"
	"caseflow-service/internal/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		limiters:        make(map[string]*rate.Limiter),
	}
}

// limiterFor throttles by username so one locked-out account cannot be
// brute forced while legitimate users keep logging in.
func (uc *authUsecase) limiterFor(username string) *rate.Limiter {
	uc.limiterMu.Lock()
	defer uc.limiterMu.Unlock()

	limiter, ok := uc.limiters[username]
	if !ok {
		perMinute := uc.InternalConfig.App.LoginAttemptsPerMinute
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		uc.limiters[username] = limiter
	}
	return limiter
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	if !uc.limiterFor(request.Username).Allow() {
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	session := &models.Session{
		SessionID:  utils.GenerateSessionID(),
		UserID:     user.ID,
		Username:   user.Username,
		FullName:   user.FullName,
		Role:       user.Role,
		HospitalID: user.HospitalID,
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, session.SessionID, session, expiry); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.RedisRepository.Delete(ctx, session.SessionID)
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*models.User, error) {
	existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExists(nil)
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:         uuid.New().String(),
		Username:   request.Username,
		Password:   hashed,
		FullName:   request.FullName,
		Role:       request.Role,
		HospitalID: request.HospitalID,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := uc.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureBootstrapAdmin seeds the first admin account from the environment
// so a fresh store has a way to log in. No-op when the credentials are
// unset or the username is already taken.
func (uc *authUsecase) EnsureBootstrapAdmin(ctx context.Context) error {
	username := uc.InternalConfig.App.BootstrapAdminUsername
	password := uc.InternalConfig.App.BootstrapAdminPassword
	if username == "" || password == "" {
		return nil
	}

	existing, err := uc.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	_, err = uc.UserRepository.CreateUser(ctx, &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  hashed,
		FullName:  "Administrator",
		Role:      constvars.RoleAdmin,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	})
	return err
}
