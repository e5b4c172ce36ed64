package events

import "time"

const PayrollPayslipRequestedTopic = "ems.payroll.payslip.requested.v1"

type PayrollPayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
