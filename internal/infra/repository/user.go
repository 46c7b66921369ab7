package repository

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/user"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

type UserRepository struct {
	documents[models.User]
}

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{newDocuments(
		store,
		docstore.CollectionUsers,
		func(u *models.User) string { return u.ID },
		func(u *models.User, id string) { u.ID = id },
	)}
}

// FindByEmail matches case-insensitively; emails are stored lowercased.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.coll.FindOne(ctx, func(u *models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
}

var _ domain.Repository = (*UserRepository)(nil)
