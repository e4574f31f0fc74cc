// Package catalog contains request and response contracts for the catalog service
package catalog

// Role names known to the catalog service
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// LoginRequest represents the request payload for user login. Either Email
// or Identifier (email or phone) must be present.
type LoginRequest struct {
	Email      string `json:"email,omitempty" validate:"required_without=Identifier,omitempty,email"`
	Identifier string `json:"identifier,omitempty" validate:"omitempty,max=255"`
	Password   string `json:"password" validate:"required"`
}

// Login returns the identifier to look the user up by
func (r LoginRequest) Login() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Identifier
}

// LoginResponse is returned unwrapped; clients read the tokens at top level
type LoginResponse struct {
	AccessToken        string `json:"access_token"`
	RefreshToken       string `json:"refresh_token"`
	AccessTokenExpire  int64  `json:"access_token_expire"`
	RefreshTokenExpire int64  `json:"refresh_token_expire"`
}

// RefreshTokenRequest represents the request payload for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	RoleID   string `json:"role_id" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse represents a user as seen by clients, including the profile
type UserResponse struct {
	ID       string `json:"id"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// RoleResponse represents a role
type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
