package salary

type CreateSalaryRequest struct {
	EmployeeID  string     `json:"employee_id" binding:"required,uuid"`
	BaseSalary  float64    `json:"base_salary" binding:"required,gt=0"`
	Allowances  Allowances `json:"allowances"`
	Deductions  Deductions `json:"deductions"`
	Department  string     `json:"department"`
	Designation string     `json:"designation"`
}

type UpdateSalaryRequest struct {
	BaseSalary  *float64    `json:"base_salary" binding:"omitempty,gt=0"`
	Allowances  *Allowances `json:"allowances"`
	Deductions  *Deductions `json:"deductions"`
	Department  string      `json:"department"`
	Designation string      `json:"designation"`
}

type SalaryResponse struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  string     `json:"employee_name,omitempty"`
	EmployeeEmail string     `json:"employee_email,omitempty"`
	BaseSalary    float64    `json:"base_salary"`
	Allowances    Allowances `json:"allowances"`
	Deductions    Deductions `json:"deductions"`
	GrossSalary   float64    `json:"gross_salary"`
	NetSalary     float64    `json:"net_salary"`
	Department    string     `json:"department,omitempty"`
	Designation   string     `json:"designation,omitempty"`
}
