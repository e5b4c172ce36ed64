package payroll

// Standard working month: 22 days of 8 hours.
const monthlyWorkingHours = 22.0 * 8.0

const overtimeMultiplier = 1.5

// Calculate derives overtime pay and the total payable amount. The hourly
// rate comes from base salary over the standard working month; overtime is
// paid at time-and-a-half.
func Calculate(baseSalary, netSalary, bonus, overtimeHours float64) (overtimePay, totalPayable float64) {
	hourlyRate := baseSalary / monthlyWorkingHours
	overtimePay = overtimeHours * hourlyRate * overtimeMultiplier
	totalPayable = netSalary + bonus + overtimePay
	return overtimePay, totalPayable
}
