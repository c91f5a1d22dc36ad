package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
)

func newTestUserService() (*UserService, *fakeStore) {
	store := newFakeStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	loggedIn, err := service.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "correcthorse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "correcthorse"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	var dupErr *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "jane@example.com", dupErr.Email)
}

func TestUserService_LoginFailures(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  types.LoginRequest
	}{
		{"wrong password", types.LoginRequest{Email: "jane@example.com", Password: "wrong"}},
		{"unknown email", types.LoginRequest{Email: "nobody@example.com", Password: "correcthorse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(ctx, &tt.req)
			var credErr *ErrInvalidCredentials
			assert.ErrorAs(t, err, &credErr, "both failure modes return the same error")
		})
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	require.NoError(t, service.UpdatePassword(ctx, user.ID, "correcthorse", "batterystaple"))

	_, err = service.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "correcthorse"})
	assert.Error(t, err, "old password no longer works")

	_, err = service.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "batterystaple"})
	assert.NoError(t, err)
}

func TestUserService_UpdatePasswordWrongCurrent(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correcthorse",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, user.ID, "wrong", "batterystaple")
	var mismatchErr *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestUserService_UpdatePasswordUnknownUser(t *testing.T) {
	service, _ := newTestUserService()

	err := service.UpdatePassword(context.Background(), uuid.New(), "whatever", "batterystaple")
	var notFoundErr *ErrUserNotFound
	assert.ErrorAs(t, err, &notFoundErr)
}
