package attendance

type UpsertDayRequest struct {
	EmployeeEmail string  `json:"employee_email" binding:"required,email"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Status        string  `json:"status" binding:"omitempty,oneof=Present Absent Unmarked"`
	ClockIn       *string `json:"clock_in"`
	ClockOut      *string `json:"clock_out"`
}

type DayResponse struct {
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
}

// SheetResponse maps dates to day records for one employee.
type SheetResponse map[string]DayResponse

// AllSheetsResponse maps employee emails to their sheets.
type AllSheetsResponse map[string]SheetResponse
