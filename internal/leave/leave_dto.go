package leave

type CreateLeaveRequest struct {
	Type        string `json:"type" binding:"required,oneof=Vacation Sick Personal Other"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

type ReviewLeaveRequest struct {
	Status             string `json:"status" binding:"required,oneof=Approved Rejected"`
	AdminJustification string `json:"admin_justification"`
}

type LeaveResponse struct {
	ID                 string `json:"id"`
	EmployeeEmail      string `json:"employee_email"`
	EmployeeName       string `json:"employee_name"`
	Type               string `json:"type"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	Reason             string `json:"reason"`
	Description        string `json:"description,omitempty"`
	Status             string `json:"status"`
	AdminJustification string `json:"admin_justification,omitempty"`
	ReviewedAt         string `json:"reviewed_at,omitempty"`
	CreatedAt          string `json:"created_at"`
}
