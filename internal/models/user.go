package models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is the stored form; handlers render it through dto.UserResponse so
// the password hash never leaves the server.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// UserPatch carries the plain password; callers hash it before storing.
type UserPatch struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=admin customer"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
