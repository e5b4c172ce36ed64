package auth

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=Admin HR Manager Employee"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CompleteProfileRequest struct {
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	Phone      string `json:"phone"`
	JoinDate   string `json:"join_date"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Avatar string `json:"avatar"`
}

type AuthResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Avatar         string `json:"avatar,omitempty"`
	ProfilePending bool   `json:"profile_pending"`
}
