package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"race_timing/internal/common"
	"race_timing/internal/common/security"
)

func newTestIssuer() *security.TokenIssuer {
	return security.NewTokenIssuer([]byte("test-secret"), 30*time.Minute)
}

func TestRegister_CreatesUserWithHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, newTestIssuer())

	user, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "marta",
		Email:    "marta@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.True(t, security.CheckPasswordHash("hunter22", user.PasswordHash))
}

func TestRegister_DuplicateNameRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, newTestIssuer())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "marta", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Name: "marta", Email: "b@example.com", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, common.HTTPStatusFromError(err))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegister_MissingFieldsRejected(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestIssuer())
	_, err := svc.Register(context.Background(), RegisterRequest{Name: "x"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLogin_Succeeds(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, newTestIssuer())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "marta", Email: "marta@example.com", Password: "hunter22"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, LoginRequest{Email: "marta@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "Logged in", resp.Msg)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_FailuresAreDistinctInMessageEqualInStatus(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, newTestIssuer())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "marta", Email: "marta@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	require.Error(t, unknownErr)
	assert.Contains(t, unknownErr.Error(), "not found")

	_, badPwErr := svc.Login(ctx, LoginRequest{Email: "marta@example.com", Password: "wrong"})
	require.Error(t, badPwErr)
	assert.Contains(t, badPwErr.Error(), "invalid password")

	assert.NotEqual(t, unknownErr.Error(), badPwErr.Error())
	assert.Equal(t,
		common.HTTPStatusFromError(unknownErr),
		common.HTTPStatusFromError(badPwErr))
	assert.Equal(t, http.StatusBadRequest, common.HTTPStatusFromError(unknownErr))
}
