package service

import (
	"context"
	"testing"
	"time"

	"github.com/deportesurjc/platform/internal/auth"
	"github.com/deportesurjc/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv() (*AuthService, *fakeUserStore, *fakeOutbox) {
	users := newFakeUserStore()
	outbox := &fakeOutbox{}
	jwtMgr := auth.NewJWTManager("test-secret-at-least-32-characters!!", time.Hour, time.Hour)
	return NewAuthService(fakePool{}, users, outbox, jwtMgr), users, outbox
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users, outbox := newAuthEnv()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@urjc.es", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, domain.RoleUser, reg.Role)
	assert.Equal(t, 1, outbox.countType(domain.EventUserRegistered))

	// Password is stored hashed, never verbatim.
	stored := users.users[reg.UserID]
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)

	login, err := svc.Login(ctx, "ana@urjc.es", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, login.UserID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthEnv()
	ctx := context.Background()

	tests := []struct {
		name   string
		input  RegisterInput
		errMsg string
	}{
		{"missing name", RegisterInput{Email: "a@b.es", Password: "long-enough"}, "name is required"},
		{"bad email", RegisterInput{Name: "Ana", Email: "not-an-email", Password: "long-enough"}, "invalid email"},
		{"short password", RegisterInput{Name: "Ana", Email: "a@b.es", Password: "short"}, "at least 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthEnv()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@urjc.es", Password: "secret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Otra", Email: "ana@urjc.es", Password: "secret-pass"})
	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthEnv()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@urjc.es", Password: "secret-pass"})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ana@urjc.es", "wrong-pass")
		require.Error(t, err)
		var appErr *domain.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nadie@urjc.es", "secret-pass")
		require.Error(t, err)
		var appErr *domain.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})
}
