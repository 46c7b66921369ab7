package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vetclinic-api/internal/audit"
	"github.com/BruksfildServices01/vetclinic-api/internal/auth"
	"github.com/BruksfildServices01/vetclinic-api/internal/docstore"
	domain "github.com/BruksfildServices01/vetclinic-api/internal/domain/user"
	"github.com/BruksfildServices01/vetclinic-api/internal/dto"
	"github.com/BruksfildServices01/vetclinic-api/internal/httperr"
	"github.com/BruksfildServices01/vetclinic-api/internal/httpresp"
	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

const userNotFoundMsg = "Usuario no encontrado."

type UserHandler struct {
	users domain.Repository
	audit *audit.Dispatcher
}

func NewUserHandler(users domain.Repository, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{users: users, audit: audit}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin customer"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Helpers ---------

// emailTaken is a lookup before the write, not a constraint: two
// concurrent requests can still register the same email.
func (h *UserHandler) emailTaken(c *gin.Context, email, exceptID string) (bool, error) {
	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.ID != exceptID, nil
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "user_not_found", userNotFoundMsg)
		return
	}
	httpresp.List(c, dto.NewUserResponses(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "user_not_found", userNotFoundMsg)
		return
	}
	httpresp.OK(c, dto.NewUserResponse(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := h.emailTaken(c, email, "")
	if err != nil {
		writeError(c, err, "user_not_found", userNotFoundMsg)
		return
	}
	if taken {
		httperr.Business(c, httperr.ErrBusiness("email_already_exists"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error al procesar la contraseña.")
		return
	}

	u := &models.User{
		Email:        email,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: hash,
		CreatedAt:    nowStamp(),
	}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		writeError(c, err, "user_not_found", userNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "user_created",
		Entity:   "user",
		EntityID: u.ID,
	})
	httpresp.Created(c, dto.NewUserResponse(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	u, err := h.users.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, "user_not_found", userNotFoundMsg)
		return
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email

		taken, err := h.emailTaken(c, email, u.ID)
		if err != nil {
			writeError(c, err, "user_not_found", userNotFoundMsg)
			return
		}
		if taken {
			httperr.Business(c, httperr.ErrBusiness("email_already_exists"))
			return
		}
	}

	patch.Apply(u)

	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Error al procesar la contraseña.")
			return
		}
		u.PasswordHash = hash
	}

	if err := h.users.Update(ctx, u); err != nil {
		writeError(c, err, "user_not_found", userNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "user_updated",
		Entity:   "user",
		EntityID: u.ID,
	})
	httpresp.OK(c, dto.NewUserResponse(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "user_not_found", userNotFoundMsg)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: id,
	})
	httpresp.NoContent(c)
}
