package employee

type CreateEmployeeRequest struct {
	UserID     string `json:"user_id" binding:"omitempty,uuid"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar"`
	Status     string `json:"status" binding:"omitempty,oneof='Active' 'On Leave' 'Terminated'"`
	JoinDate   string `json:"join_date"`
}

type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar"`
	Status     string `json:"status" binding:"omitempty,oneof='Active' 'On Leave' 'Terminated'"`
	JoinDate   string `json:"join_date"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar,omitempty"`
	Status     string `json:"status"`
	JoinDate   string `json:"join_date,omitempty"`
}

// EmployeeOption is the trimmed shape used by selection dropdowns
// (payroll generation, meeting invitees).
type EmployeeOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
