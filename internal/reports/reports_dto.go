package reports

// Filters carries the best-effort report query filters. Out-of-range or
// unparseable month/year values are dropped during parsing, never rejected.
type Filters struct {
	Month      int    `json:"month,omitempty"`
	Year       int    `json:"year,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

type EmployeeRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
	JoinDate   string `json:"join_date,omitempty"`
}

type EmployeeStatistics struct {
	Total               int            `json:"total"`
	Active              int            `json:"active"`
	OnLeave             int            `json:"on_leave"`
	Terminated          int            `json:"terminated"`
	DepartmentBreakdown map[string]int `json:"department_breakdown"`
}

type EmployeeReport struct {
	Employees  []EmployeeRecord   `json:"employees"`
	Statistics EmployeeStatistics `json:"statistics"`
	Filters    Filters            `json:"filters"`
}

type AttendanceRecord struct {
	Date          string `json:"date"`
	Status        string `json:"status"`
	ClockIn       string `json:"clock_in,omitempty"`
	ClockOut      string `json:"clock_out,omitempty"`
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	Department    string `json:"department"`
	Position      string `json:"position"`
}

type AttendanceStatistics struct {
	Total        int `json:"total"`
	Present      int `json:"present"`
	Absent       int `json:"absent"`
	Unmarked     int `json:"unmarked"`
	PresentToday int `json:"present_today"`
	TotalToday   int `json:"total_today"`
}

type AttendanceReport struct {
	Records    []AttendanceRecord   `json:"records"`
	Statistics AttendanceStatistics `json:"statistics"`
	Filters    Filters              `json:"filters"`
}

type LeaveRecord struct {
	ID            string `json:"id"`
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
	Department    string `json:"department"`
	Position      string `json:"position"`
	Type          string `json:"type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type LeaveStatistics struct {
	Total         int            `json:"total"`
	Pending       int            `json:"pending"`
	Approved      int            `json:"approved"`
	Rejected      int            `json:"rejected"`
	TypeBreakdown map[string]int `json:"type_breakdown"`
}

type LeaveReport struct {
	Leaves     []LeaveRecord   `json:"leaves"`
	Statistics LeaveStatistics `json:"statistics"`
	Filters    Filters         `json:"filters"`
}

type PayrollRecord struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Department   string  `json:"department,omitempty"`
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	TotalPayable float64 `json:"total_payable"`
	Status       string  `json:"status"`
}

type PayrollStatistics struct {
	Total               int                `json:"total"`
	TotalAmount         float64            `json:"total_amount"`
	Pending             int                `json:"pending"`
	Approved            int                `json:"approved"`
	Paid                int                `json:"paid"`
	DepartmentBreakdown map[string]float64 `json:"department_breakdown"`
}

type PayrollReport struct {
	Payrolls   []PayrollRecord   `json:"payrolls"`
	Statistics PayrollStatistics `json:"statistics"`
	Filters    Filters           `json:"filters"`
}

type TrendBucket struct {
	Month   string `json:"month"`
	Year    int    `json:"year"`
	Present int    `json:"present"`
}

type OverviewSummary struct {
	TotalEmployees  int `json:"total_employees"`
	ActiveEmployees int `json:"active_employees"`
	PresentToday    int `json:"present_today"`
	AbsentToday     int `json:"absent_today"`
	PendingLeaves   int `json:"pending_leaves"`
	PendingPayrolls int `json:"pending_payrolls"`
	RecentLeaves    int `json:"recent_leaves"`
}

type OverviewReport struct {
	Summary OverviewSummary `json:"summary"`
	Trends  OverviewTrends  `json:"trends"`
}

type OverviewTrends struct {
	MonthlyAttendance []TrendBucket `json:"monthly_attendance"`
}

type SelfAttendanceStatistics struct {
	TotalDays        int     `json:"total_days"`
	PresentDays      int     `json:"present_days"`
	AbsentDays       int     `json:"absent_days"`
	AttendanceRate   float64 `json:"attendance_rate"`
	RecentAttendance int     `json:"recent_attendance"`
}

type SelfLeaveStatistics struct {
	Total        int `json:"total"`
	Approved     int `json:"approved"`
	Pending      int `json:"pending"`
	RecentLeaves int `json:"recent_leaves"`
}

type SelfPayrollSummary struct {
	LastSalary    *PayrollRecord `json:"last_salary"`
	TotalEarnings float64        `json:"total_earnings"`
	TotalPayrolls int            `json:"total_payrolls"`
}

type SelfActivity struct {
	RecentAttendance int    `json:"recent_attendance"`
	RecentLeaves     int    `json:"recent_leaves"`
	LastUpdated      string `json:"last_updated"`
}

type SelfReport struct {
	Employee   EmployeeRecord `json:"employee"`
	Attendance struct {
		Records    []AttendanceRecord       `json:"records"`
		Statistics SelfAttendanceStatistics `json:"statistics"`
	} `json:"attendance"`
	Leaves struct {
		Records    []LeaveRecord       `json:"records"`
		Statistics SelfLeaveStatistics `json:"statistics"`
	} `json:"leaves"`
	Payroll struct {
		Records []PayrollRecord    `json:"records"`
		Summary SelfPayrollSummary `json:"summary"`
	} `json:"payroll"`
	Activity SelfActivity `json:"activity"`
	Filters  Filters      `json:"filters"`
}
