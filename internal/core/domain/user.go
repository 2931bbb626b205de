package domain

import "time"

// Gender values accepted on user profiles.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User is a registered account. Guests have no User row; they exist only as
// a guest-typed principal inside a token.
type User struct {
	ID            int64      `json:"user_id"`
	Username      string     `json:"username"`
	PasswordHash  string     `json:"-"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Nickname      string     `json:"nickname,omitempty"`
	AvatarURL     string     `json:"avatar_url,omitempty"`
	Hobbies       []string   `json:"hobbies,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	Age           *int       `json:"age,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	AgreedToTerms bool       `json:"agreed_to_terms"`
	IsActive      bool       `json:"is_active"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// AdminRole is the privilege level of an admin account.
type AdminRole string

const (
	RoleSuperAdmin   AdminRole = "super_admin"
	RoleContentAdmin AdminRole = "content_admin"
	RoleUserAdmin    AdminRole = "user_admin"
)

// Valid reports whether r is a known admin role.
func (r AdminRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleContentAdmin, RoleUserAdmin:
		return true
	}
	return false
}

// Admin is a back-office account, created only via the seed command.
type Admin struct {
	ID           int64      `json:"admin_id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name,omitempty"`
	Role         AdminRole  `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
