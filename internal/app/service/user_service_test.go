package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"race_timing/internal/common"
	"race_timing/internal/common/security"
	"race_timing/internal/domain/model"
)

func seedUser(t *testing.T, repo *fakeUserRepo, name, email, password string) *model.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	user := &model.User{Name: name, Email: email, PasswordHash: hash}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUpdateUser_WithoutPasswordKeepsHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user := seedUser(t, repo, "marta", "marta@example.com", "hunter22")

	newName := "marta v"
	_, err := svc.Update(ctx, user.ID, UpdateUserRequest{Name: &newName})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "marta v", stored.Name)
	assert.Equal(t, "marta@example.com", stored.Email)
	assert.True(t, security.CheckPasswordHash("hunter22", stored.PasswordHash),
		"stored hash must survive an update that carries no password")
}

func TestUpdateUser_WithPasswordRehashes(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user := seedUser(t, repo, "marta", "marta@example.com", "hunter22")

	newPassword := "s3cret!"
	_, err := svc.Update(ctx, user.ID, UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, security.CheckPasswordHash("hunter22", stored.PasswordHash))
	assert.True(t, security.CheckPasswordHash("s3cret!", stored.PasswordHash))
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	name := "x"
	_, err := svc.Update(context.Background(), 42, UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), common.ErrNotFound)
}
