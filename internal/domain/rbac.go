package domain

// Role names match the values stored on users and embedded in JWTs.
const (
	RoleAdmin    = "Admin"
	RoleHR       = "HR"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// IsPrivileged reports whether the role may act on other employees' records.
func IsPrivileged(role string) bool {
	return role == RoleAdmin || role == RoleHR || role == RoleManager
}

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
