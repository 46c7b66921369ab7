package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore/docstoretest"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

func TestAuditLogRepository_QueryNewestFirstAndPaged(t *testing.T) {
	_, store := docstoretest.NewRedis(t)
	ctx := context.Background()
	logs := docstore.NewCollection[models.AuditLog](store, docstore.CollectionAuditLogs)

	for _, l := range []models.AuditLog{
		{ID: "1", Action: "product_created", Entity: "product"},
		{ID: "2", Action: "user_created", Entity: "user"},
		{ID: "3", Action: "product_updated", Entity: "product"},
		{ID: "4", Action: "product_deleted", Entity: "product"},
	} {
		l := l
		require.NoError(t, logs.Insert(ctx, l.ID, &l))
	}

	repo := NewAuditLogRepository(store)

	page, total, err := repo.Query(ctx, AuditLogFilter{Entity: "product", Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "4", page[0].ID)
	assert.Equal(t, "3", page[1].ID)

	page, _, err = repo.Query(ctx, AuditLogFilter{Entity: "product", Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "1", page[0].ID)

	page, total, err = repo.Query(ctx, AuditLogFilter{Action: "user_created", Page: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Empty(t, page)
}

func TestAuditLogRepository_HugePageIsEmpty(t *testing.T) {
	_, store := docstoretest.NewRedis(t)
	ctx := context.Background()
	logs := docstore.NewCollection[models.AuditLog](store, docstore.CollectionAuditLogs)
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, logs.Insert(ctx, id, &models.AuditLog{ID: id, Action: "product_created"}))
	}

	repo := NewAuditLogRepository(store)

	page, total, err := repo.Query(ctx, AuditLogFilter{Page: 4611686018427387906, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)

	page, _, err = repo.Query(ctx, AuditLogFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "1", page[0].ID)
}

func TestCartRepository_MissingCartIsEmpty(t *testing.T) {
	_, store := docstoretest.NewRedis(t)
	ctx := context.Background()
	repo := NewCartRepository(store)

	c, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UserID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)

	c.Items = append(c.Items, models.CartItem{ProductID: "p1", Quantity: 2})
	require.NoError(t, repo.SaveCart(ctx, c))

	got, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.NotEmpty(t, got.UpdatedAt)
}

func TestUserRepository_FindByEmailIgnoresCase(t *testing.T) {
	_, store := docstoretest.NewRedis(t)
	ctx := context.Background()
	repo := NewUserRepository(store)

	u := &models.User{Email: "vet@clinic.com", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, u))
	require.NotEmpty(t, u.ID)

	found, err := repo.FindByEmail(ctx, " VET@Clinic.com ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "other@clinic.com")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestSettingsRepository_LoadMissingIsNil(t *testing.T) {
	_, store := docstoretest.NewRedis(t)

	patch, err := NewSettingsRepository(store).Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, patch)
}
