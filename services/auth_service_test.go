package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-store/models"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())
	ctx := context.Background()

	registered, err := svc.Register(ctx, models.RegisterRequest{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Password: "sekrit123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", registered.FullName)
	assert.False(t, registered.IsAdmin)
	assert.NotEmpty(t, registered.Token)

	logged, err := svc.Login(ctx, models.LoginRequest{
		Email:    "priya@example.com",
		Password: "sekrit123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, logged.ID)
	assert.NotEmpty(t, logged.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())
	ctx := context.Background()

	req := models.RegisterRequest{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Password: "sekrit123",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Password: "sekrit123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "priya@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "sekrit123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)
	ctx := context.Background()

	registered, err := svc.Register(ctx, models.RegisterRequest{
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Password: "sekrit123",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, registered.ID, models.UpdateProfileRequest{
		FullName: "Priya S.",
		Password: "newpass99",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya S.", updated.FullName)
	assert.Equal(t, "priya@example.com", updated.Email)

	// The password change must stick.
	_, err = svc.Login(ctx, models.LoginRequest{Email: "priya@example.com", Password: "newpass99"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, models.LoginRequest{Email: "priya@example.com", Password: "sekrit123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileEmailConflicts(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())
	ctx := context.Background()

	first, err := svc.Register(ctx, models.RegisterRequest{
		FullName: "Priya Sharma", Email: "priya@example.com", Password: "sekrit123",
	})
	require.NoError(t, err)
	_, err = svc.Register(ctx, models.RegisterRequest{
		FullName: "Rahul Verma", Email: "rahul@example.com", Password: "sekrit123",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, first.ID, models.UpdateProfileRequest{Email: "rahul@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.UpdateProfile(ctx, 999, models.UpdateProfileRequest{FullName: "Ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
