package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	"github.com/BruksfildServices01/vetclinic-api/internal/auth"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore/docstoretest"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

func setup(t *testing.T) (*repository.UserRepository, *Service) {
	t.Helper()

	_, store := docstoretest.NewRedis(t)
	users := repository.NewUserRepository(store)
	dispatcher := audit.NewDispatcher(audit.New(store))
	t.Cleanup(dispatcher.Close)

	return users, NewService(users, auth.NewTokens("test-secret", time.Hour), dispatcher)
}

func createUser(t *testing.T, users *repository.UserRepository, email, password, role string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u := &models.User{Email: email, Name: "Ana", Role: role, PasswordHash: hash}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestLogin(t *testing.T) {
	users, svc := setup(t)
	ctx := context.Background()
	u := createUser(t, users, "ana@vet.com", "s3cret", models.RoleCustomer)

	token, got, err := svc.Login(ctx, "ANA@vet.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, u.ID, got.ID)

	resolved, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users, svc := setup(t)
	createUser(t, users, "ana@vet.com", "s3cret", models.RoleCustomer)

	_, _, err := svc.Login(context.Background(), "ana@vet.com", "nope")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, svc := setup(t)

	_, _, err := svc.Login(context.Background(), "ghost@vet.com", "s3cret")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestResolve_DeletedUser(t *testing.T) {
	users, svc := setup(t)
	ctx := context.Background()
	u := createUser(t, users, "ana@vet.com", "s3cret", models.RoleCustomer)

	token, _, err := svc.Login(ctx, "ana@vet.com", "s3cret")
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, u.ID))

	_, err = svc.Resolve(ctx, token)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestResolve_BadToken(t *testing.T) {
	_, svc := setup(t)

	_, err := svc.Resolve(context.Background(), "token-for-u1")
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	users, svc := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Admin@VetClinic.com", "admin123", "Administrador"))
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@vetclinic.com", "admin123", "Administrador"))

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.RoleAdmin, all[0].Role)
	assert.Equal(t, "admin@vetclinic.com", all[0].Email)

	_, _, err = svc.Login(ctx, "admin@vetclinic.com", "admin123")
	assert.NoError(t, err)
}

func TestEnsureAdmin_NoPasswordSkips(t *testing.T) {
	users, svc := setup(t)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@vetclinic.com", "", "Admin"))

	all, err := users.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
