package payroll

type GeneratePayrollRequest struct {
	Month         int      `json:"month" binding:"required,min=1,max=12"`
	Year          int      `json:"year" binding:"required,min=2020,max=2100"`
	EmployeeIDs   []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
	Bonus         float64  `json:"bonus" binding:"omitempty,gte=0"`
	OvertimeHours float64  `json:"overtime_hours" binding:"omitempty,gte=0"`
}

// GenerationError records one employee skipped during a run.
type GenerationError struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Reason       string `json:"reason"`
}

// GenerateResult is returned with 201 even when some employees failed.
type GenerateResult struct {
	Generated int               `json:"generated"`
	Payrolls  []PayrollResponse `json:"payrolls"`
	Errors    []GenerationError `json:"errors"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=Pending Approved Paid"`
	PaymentMode   string `json:"payment_mode"`
	PaymentDate   string `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	TransactionID string `json:"transaction_id"`
	Remarks       string `json:"remarks"`
}

type ListFilter struct {
	Month      string
	Year       int
	Status     string
	Department string
}

type PayrollResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	EmployeeEmail string  `json:"employee_email,omitempty"`
	Department    string  `json:"department,omitempty"`
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	BaseSalary    float64 `json:"base_salary"`
	GrossSalary   float64 `json:"gross_salary"`
	NetSalary     float64 `json:"net_salary"`
	Bonus         float64 `json:"bonus"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimePay   float64 `json:"overtime_pay"`
	TotalPayable  float64 `json:"total_payable"`
	Status        string  `json:"status"`
	PaymentMode   string  `json:"payment_mode,omitempty"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Remarks       string  `json:"remarks,omitempty"`
}

// SummaryResponse aggregates a filtered payroll set.
type SummaryResponse struct {
	Count        int     `json:"count"`
	TotalPayable float64 `json:"total_payable"`
	TotalBonus   float64 `json:"total_bonus"`
	TotalOvertime float64 `json:"total_overtime"`
	Paid         int     `json:"paid"`
	Pending      int     `json:"pending"`
	AveragePay   float64 `json:"average_pay"`
}

// TrendPoint is one month of an employee's pay history.
type TrendPoint struct {
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	TotalPayable float64 `json:"total_payable"`
	Status       string  `json:"status"`
}
