package auth

import (
	"context"
	"testing"

	"caseflow-service/internal/app/config"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/app/services/core/users"
	sharedredis "caseflow-service/internal/app/services/shared/redis"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/exceptions"
	"caseflow-service/internal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func clientMessage(err error) string {
	if custom, ok := err.(*exceptions.CustomError); ok {
		return custom.ClientMessage
	}
	return err.Error()
}

func newAuthFixture(t *testing.T, attemptsPerMinute int) (*authUsecase, *models.User) {
	t.Helper()

	internalConfig := &config.InternalConfig{}
	internalConfig.App.LoginAttemptsPerMinute = attemptsPerMinute
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	userRepo := users.NewUserLocalRepository()
	hash, err := utils.HashPassword("correct horse battery")
	assert.NoError(t, err)
	user := &models.User{
		ID:       uuid.New().String(),
		Username: "hospital.clerk",
		Password: hash,
		FullName: "Hospital Clerk",
		Role:     constvars.RoleHospital,
		Active:   true,
	}
	_, err = userRepo.CreateUser(context.Background(), user)
	assert.NoError(t, err)

	uc := NewAuthUsecase(userRepo, sharedredis.NewMemoryRepository(), internalConfig).(*authUsecase)
	return uc, user
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token and session details", func(t *testing.T) {
		uc, user := newAuthFixture(t, 10)

		result, err := uc.Login(ctx, &requests.Login{Username: "hospital.clerk", Password: "correct horse battery"})
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.UserID)
		assert.Equal(t, constvars.RoleHospital, result.Role)
	})

	t.Run("wrong password and unknown user fail alike", func(t *testing.T) {
		uc, _ := newAuthFixture(t, 10)

		_, err := uc.Login(ctx, &requests.Login{Username: "hospital.clerk", Password: "wrong password"})
		assert.Error(t, err)

		_, err2 := uc.Login(ctx, &requests.Login{Username: "nobody.here", Password: "wrong password"})
		assert.Error(t, err2)
		assert.Equal(t, clientMessage(err), clientMessage(err2), "responses must not reveal which part was wrong")
	})

	t.Run("an inactive account cannot log in", func(t *testing.T) {
		uc, _ := newAuthFixture(t, 10)

		userRepo := users.NewUserLocalRepository()
		hash, err := utils.HashPassword("some password 123")
		assert.NoError(t, err)
		_, err = userRepo.CreateUser(ctx, &models.User{
			ID: uuid.New().String(), Username: "former.staff", Password: hash,
			Role: constvars.RoleVerifier, Active: false,
		})
		assert.NoError(t, err)
		uc.UserRepository = userRepo

		_, err = uc.Login(ctx, &requests.Login{Username: "former.staff", Password: "some password 123"})
		assert.Error(t, err)
	})

	t.Run("repeated attempts get throttled per username", func(t *testing.T) {
		uc, _ := newAuthFixture(t, 2)

		for i := 0; i < 2; i++ {
			_, err := uc.Login(ctx, &requests.Login{Username: "hospital.clerk", Password: "wrong password"})
			assert.Error(t, err)
		}

		_, err := uc.Login(ctx, &requests.Login{Username: "hospital.clerk", Password: "correct horse battery"})
		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientTooManyLoginAttempts, clientMessage(err))

		// A different username is not affected by the throttle.
		_, err = uc.Login(ctx, &requests.Login{Username: "someone.else", Password: "whatever12345"})
		assert.NotEqual(t, constvars.ErrClientTooManyLoginAttempts, clientMessage(err))
	})
}

func TestLogout(t *testing.T) {
	t.Run("logout removes the stored session", func(t *testing.T) {
		ctx := context.Background()
		uc, _ := newAuthFixture(t, 10)

		result, err := uc.Login(ctx, &requests.Login{Username: "hospital.clerk", Password: "correct horse battery"})
		assert.NoError(t, err)

		sessionID, err := utils.ParseJWT(result.Token, "test-secret")
		assert.NoError(t, err)

		stored, err := uc.RedisRepository.Get(ctx, sessionID)
		assert.NoError(t, err)
		assert.NotEmpty(t, stored)

		assert.NoError(t, uc.Logout(ctx, &models.Session{SessionID: sessionID}))

		stored, err = uc.RedisRepository.Get(ctx, sessionID)
		assert.NoError(t, err)
		assert.Empty(t, stored)
	})
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("a registered user can log in with the chosen credentials", func(t *testing.T) {
		uc, _ := newAuthFixture(t, 10)

		user, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Username: "new.verifier",
			Password: "a long enough pass",
			FullName: "New Verifier",
			Role:     constvars.RoleVerifier,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.True(t, user.Active)
		assert.NotEqual(t, "a long enough pass", user.Password, "password must be stored hashed")

		result, err := uc.Login(ctx, &requests.Login{Username: "new.verifier", Password: "a long enough pass"})
		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleVerifier, result.Role)
	})

	t.Run("a taken username is rejected", func(t *testing.T) {
		uc, _ := newAuthFixture(t, 10)

		_, err := uc.RegisterUser(ctx, &requests.RegisterUser{
			Username: "hospital.clerk",
			Password: "a long enough pass",
			FullName: "Duplicate Clerk",
			Role:     constvars.RoleHospital,
		})
		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientUsernameAlreadyExists, clientMessage(err))
	})
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("a fresh store gains a working admin login", func(t *testing.T) {
		internalConfig := &config.InternalConfig{}
		internalConfig.App.LoginAttemptsPerMinute = 10
		internalConfig.App.BootstrapAdminUsername = "admin"
		internalConfig.App.BootstrapAdminPassword = "first-run-secret"
		internalConfig.JWT.Secret = "test-secret"
		internalConfig.JWT.ExpTimeInHour = 1

		uc := NewAuthUsecase(users.NewUserLocalRepository(), sharedredis.NewMemoryRepository(), internalConfig).(*authUsecase)

		_, err := uc.Login(ctx, &requests.Login{Username: "admin", Password: "first-run-secret"})
		assert.Error(t, err, "no account exists before the seed")

		assert.NoError(t, uc.EnsureBootstrapAdmin(ctx))

		result, err := uc.Login(ctx, &requests.Login{Username: "admin", Password: "first-run-secret"})
		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleAdmin, result.Role)
	})

	t.Run("seeding is idempotent and never overwrites the account", func(t *testing.T) {
		internalConfig := &config.InternalConfig{}
		internalConfig.App.LoginAttemptsPerMinute = 10
		internalConfig.App.BootstrapAdminUsername = "admin"
		internalConfig.App.BootstrapAdminPassword = "first-run-secret"
		internalConfig.JWT.Secret = "test-secret"
		internalConfig.JWT.ExpTimeInHour = 1

		uc := NewAuthUsecase(users.NewUserLocalRepository(), sharedredis.NewMemoryRepository(), internalConfig).(*authUsecase)
		assert.NoError(t, uc.EnsureBootstrapAdmin(ctx))

		seeded, err := uc.UserRepository.FindByUsername(ctx, "admin")
		assert.NoError(t, err)

		assert.NoError(t, uc.EnsureBootstrapAdmin(ctx))
		again, err := uc.UserRepository.FindByUsername(ctx, "admin")
		assert.NoError(t, err)
		assert.Equal(t, seeded.ID, again.ID)
		assert.Equal(t, seeded.Password, again.Password)
	})

	t.Run("unset credentials are a no-op", func(t *testing.T) {
		internalConfig := &config.InternalConfig{}
		internalConfig.App.LoginAttemptsPerMinute = 10
		internalConfig.App.BootstrapAdminUsername = "admin"

		userRepo := users.NewUserLocalRepository()
		uc := NewAuthUsecase(userRepo, sharedredis.NewMemoryRepository(), internalConfig).(*authUsecase)

		assert.NoError(t, uc.EnsureBootstrapAdmin(ctx))
		seeded, err := userRepo.FindByUsername(ctx, "admin")
		assert.NoError(t, err)
		assert.Nil(t, seeded)
	})
}
