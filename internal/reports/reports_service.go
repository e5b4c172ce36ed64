package reports

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"go-ems/internal/attendance"
	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/leave"
	"go-ems/internal/payroll"
	"go-ems/internal/shared/clock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=reports_service.go -destination=mock/reports_service_mock.go -package=mock
type Service interface {
	Employees(ctx context.Context, f Filters) (EmployeeReport, error)
	Attendance(ctx context.Context, f Filters) (AttendanceReport, error)
	Leaves(ctx context.Context, f Filters) (LeaveReport, error)
	Payrolls(ctx context.Context, f Filters) (PayrollReport, error)
	Overview(ctx context.Context) (OverviewReport, error)
	Self(ctx context.Context, email string, f Filters) (SelfReport, error)
}

type service struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	payrollRepo    payroll.Repository
	clk            clock.Clock
	logger         *zap.Logger
}

func NewService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	payrollRepo payroll.Repository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("reports.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reports.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
		clk:            clk,
		logger:         l,
	}
}

func (s *service) Employees(ctx context.Context, f Filters) (EmployeeReport, error) {
	employees, err := s.employeeRepo.FindAll(ctx, employee.ListFilter{
		Department: f.Department,
		Status:     f.Status,
	})
	if err != nil {
		s.logger.Error("employee report failed", zap.Error(err))
		return EmployeeReport{}, err
	}

	report := EmployeeReport{
		Employees: make([]EmployeeRecord, len(employees)),
		Statistics: EmployeeStatistics{
			Total:               len(employees),
			DepartmentBreakdown: map[string]int{},
		},
		Filters: f,
	}

	for i, emp := range employees {
		report.Employees[i] = mapEmployee(emp)
		switch emp.Status {
		case employee.StatusActive:
			report.Statistics.Active++
		case employee.StatusOnLeave:
			report.Statistics.OnLeave++
		case employee.StatusTerminated:
			report.Statistics.Terminated++
		}
		dept := emp.Department
		if dept == "" {
			dept = "Unassigned"
		}
		report.Statistics.DepartmentBreakdown[dept]++
	}
	return report, nil
}

// Attendance joins every attendance row with its employee by email; rows
// whose email no longer resolves to a profile are dropped.
func (s *service) Attendance(ctx context.Context, f Filters) (AttendanceReport, error) {
	days, err := s.attendanceRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("attendance report failed", zap.Error(err))
		return AttendanceReport{}, err
	}
	byEmail, err := s.employeesByEmail(ctx)
	if err != nil {
		return AttendanceReport{}, err
	}

	today := s.today()
	report := AttendanceReport{
		Records: []AttendanceRecord{},
		Filters: f,
	}

	for _, day := range days {
		emp, ok := byEmail[day.EmployeeEmail]
		if !ok {
			continue
		}
		if !matchesMonthYear(day.Date, f) {
			continue
		}

		report.Records = append(report.Records, mapAttendanceDay(day, emp))

		report.Statistics.Total++
		switch day.Status {
		case attendance.StatusPresent:
			report.Statistics.Present++
		case attendance.StatusAbsent:
			report.Statistics.Absent++
		case attendance.StatusUnmarked:
			report.Statistics.Unmarked++
		}
		if day.Date == today {
			report.Statistics.TotalToday++
			if day.Status == attendance.StatusPresent {
				report.Statistics.PresentToday++
			}
		}
	}
	return report, nil
}

func (s *service) Leaves(ctx context.Context, f Filters) (LeaveReport, error) {
	leaves, err := s.leaveRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("leave report failed", zap.Error(err))
		return LeaveReport{}, err
	}
	byEmail, err := s.employeesByEmail(ctx)
	if err != nil {
		return LeaveReport{}, err
	}

	report := LeaveReport{
		Leaves: []LeaveRecord{},
		Statistics: LeaveStatistics{
			TypeBreakdown: map[string]int{},
		},
		Filters: f,
	}

	for _, l := range leaves {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if !leaveMatchesPeriod(l, f) {
			continue
		}

		report.Leaves = append(report.Leaves, mapLeave(l, byEmail))

		report.Statistics.Total++
		switch l.Status {
		case leave.StatusPending:
			report.Statistics.Pending++
		case leave.StatusApproved:
			report.Statistics.Approved++
		case leave.StatusRejected:
			report.Statistics.Rejected++
		}
		report.Statistics.TypeBreakdown[l.Type]++
	}
	return report, nil
}

func (s *service) Payrolls(ctx context.Context, f Filters) (PayrollReport, error) {
	listFilter := payroll.ListFilter{Year: f.Year}
	if f.Month != 0 {
		listFilter.Month = payroll.MonthName(f.Month)
	}

	payrolls, err := s.payrollRepo.FindAll(ctx, listFilter)
	if err != nil {
		s.logger.Error("payroll report failed", zap.Error(err))
		return PayrollReport{}, err
	}

	report := PayrollReport{
		Payrolls: []PayrollRecord{},
		Statistics: PayrollStatistics{
			DepartmentBreakdown: map[string]float64{},
		},
		Filters: f,
	}

	for _, p := range payrolls {
		dept := "N/A"
		if p.Employee != nil && p.Employee.Department != "" {
			dept = p.Employee.Department
		}
		// Department lives on the employee, so this filter only applies
		// after the join.
		if f.Department != "" && dept != f.Department {
			continue
		}

		report.Payrolls = append(report.Payrolls, mapPayrollRow(p))

		report.Statistics.Total++
		report.Statistics.TotalAmount += p.TotalPayable
		switch p.Status {
		case payroll.StatusPending:
			report.Statistics.Pending++
		case payroll.StatusApproved:
			report.Statistics.Approved++
		case payroll.StatusPaid:
			report.Statistics.Paid++
		}
		report.Statistics.DepartmentBreakdown[dept] += p.TotalPayable
	}
	return report, nil
}

func (s *service) Overview(ctx context.Context) (OverviewReport, error) {
	employees, err := s.employeeRepo.FindAll(ctx, employee.ListFilter{})
	if err != nil {
		return OverviewReport{}, err
	}
	days, err := s.attendanceRepo.FindAll(ctx)
	if err != nil {
		return OverviewReport{}, err
	}
	leaves, err := s.leaveRepo.FindAll(ctx)
	if err != nil {
		return OverviewReport{}, err
	}
	payrolls, err := s.payrollRepo.FindAll(ctx, payroll.ListFilter{})
	if err != nil {
		return OverviewReport{}, err
	}

	now := s.clk.Now().UTC()
	today := now.Format("2006-01-02")
	sevenDaysAgo := now.AddDate(0, 0, -7)

	var report OverviewReport
	report.Summary.TotalEmployees = len(employees)
	for _, emp := range employees {
		if emp.Status == employee.StatusActive {
			report.Summary.ActiveEmployees++
		}
	}

	for _, day := range days {
		if day.Date != today {
			continue
		}
		switch day.Status {
		case attendance.StatusPresent:
			report.Summary.PresentToday++
		case attendance.StatusAbsent:
			report.Summary.AbsentToday++
		}
	}

	for _, l := range leaves {
		if l.Status == leave.StatusPending {
			report.Summary.PendingLeaves++
		}
		if !l.CreatedAt.Before(sevenDaysAgo) {
			report.Summary.RecentLeaves++
		}
	}

	for _, p := range payrolls {
		if p.Status == payroll.StatusPending {
			report.Summary.PendingPayrolls++
		}
	}

	report.Trends.MonthlyAttendance = monthlyPresentTrend(days, now)
	return report, nil
}

func (s *service) Self(ctx context.Context, email string, f Filters) (SelfReport, error) {
	emp, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SelfReport{}, employeeerrors.ErrEmployeeNotFound
		}
		return SelfReport{}, err
	}

	days, err := s.attendanceRepo.FindByEmail(ctx, email)
	if err != nil {
		return SelfReport{}, err
	}
	leaves, err := s.leaveRepo.FindByEmail(ctx, email)
	if err != nil {
		return SelfReport{}, err
	}
	payrolls, err := s.payrollRepo.FindByEmployee(ctx, emp.ID.String())
	if err != nil {
		return SelfReport{}, err
	}

	now := s.clk.Now().UTC()
	thirtyDaysAgo := now.AddDate(0, 0, -30)

	report := SelfReport{Employee: mapEmployee(*emp), Filters: f}

	// Attendance.
	report.Attendance.Records = []AttendanceRecord{}
	for _, day := range days {
		if !matchesMonthYear(day.Date, f) {
			continue
		}
		report.Attendance.Records = append(report.Attendance.Records, mapAttendanceDay(day, emp))
		report.Attendance.Statistics.TotalDays++
		switch day.Status {
		case attendance.StatusPresent:
			report.Attendance.Statistics.PresentDays++
		case attendance.StatusAbsent:
			report.Attendance.Statistics.AbsentDays++
		}
		if d, err := time.Parse("2006-01-02", day.Date); err == nil && !d.Before(thirtyDaysAgo) {
			report.Attendance.Statistics.RecentAttendance++
		}
	}
	if total := report.Attendance.Statistics.TotalDays; total > 0 {
		rate := float64(report.Attendance.Statistics.PresentDays) / float64(total) * 100
		report.Attendance.Statistics.AttendanceRate = math.Round(rate*10) / 10
	}

	// Leaves.
	report.Leaves.Records = []LeaveRecord{}
	for _, l := range leaves {
		if !leaveMatchesPeriod(l, f) {
			continue
		}
		report.Leaves.Records = append(report.Leaves.Records, mapSelfLeave(l, emp))
		report.Leaves.Statistics.Total++
		switch l.Status {
		case leave.StatusApproved:
			report.Leaves.Statistics.Approved++
		case leave.StatusPending:
			report.Leaves.Statistics.Pending++
		}
		if !l.CreatedAt.Before(thirtyDaysAgo) {
			report.Leaves.Statistics.RecentLeaves++
		}
	}

	// Payroll: most recent 12 runs, then the month/year filter on top.
	sortRecentFirst(payrolls)
	if len(payrolls) > 12 {
		payrolls = payrolls[:12]
	}
	report.Payroll.Records = []PayrollRecord{}
	for _, p := range payrolls {
		if f.Month != 0 && p.Month != payroll.MonthName(f.Month) {
			continue
		}
		if f.Year != 0 && p.Year != f.Year {
			continue
		}
		report.Payroll.Records = append(report.Payroll.Records, mapPayrollRow(p))
		report.Payroll.Summary.TotalEarnings += p.TotalPayable
	}
	report.Payroll.Summary.TotalPayrolls = len(report.Payroll.Records)
	if len(report.Payroll.Records) > 0 {
		report.Payroll.Summary.LastSalary = &report.Payroll.Records[0]
	}

	report.Activity = SelfActivity{
		RecentAttendance: report.Attendance.Statistics.RecentAttendance,
		RecentLeaves:     report.Leaves.Statistics.RecentLeaves,
		LastUpdated:      now.Format(time.RFC3339),
	}
	return report, nil
}

func (s *service) employeesByEmail(ctx context.Context) (map[string]*employee.Employee, error) {
	employees, err := s.employeeRepo.FindAll(ctx, employee.ListFilter{})
	if err != nil {
		s.logger.Error("employee lookup for report failed", zap.Error(err))
		return nil, err
	}
	byEmail := make(map[string]*employee.Employee, len(employees))
	for i := range employees {
		byEmail[employees[i].Email] = &employees[i]
	}
	return byEmail, nil
}

func (s *service) today() string {
	return s.clk.Now().UTC().Format("2006-01-02")
}

// leaveMatchesPeriod uses inclusive-either semantics: the leave matches when
// its start OR its end falls in the requested month (and likewise for year).
// A leave spanning Feb 28 to Mar 2 matches both month=2 and month=3.
func leaveMatchesPeriod(l leave.Leave, f Filters) bool {
	if f.Month == 0 && f.Year == 0 {
		return true
	}
	sm, sy, sok := splitISODate(l.StartDate)
	em, ey, eok := splitISODate(l.EndDate)
	if !sok || !eok {
		return false
	}
	if f.Month != 0 && sm != f.Month && em != f.Month {
		return false
	}
	if f.Year != 0 && sy != f.Year && ey != f.Year {
		return false
	}
	return true
}

// monthlyPresentTrend buckets present counts for the six calendar months
// ending with the current one, oldest first.
func monthlyPresentTrend(days []attendance.AttendanceDay, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, 0, 6)
	for i := 5; i >= 0; i-- {
		ref := now.AddDate(0, -i, 0)
		month := int(ref.Month())
		year := ref.Year()

		present := 0
		for _, day := range days {
			m, y, ok := splitISODate(day.Date)
			if !ok || m != month || y != year {
				continue
			}
			if day.Status == attendance.StatusPresent {
				present++
			}
		}

		buckets = append(buckets, TrendBucket{
			Month:   ref.Month().String()[:3],
			Year:    year,
			Present: present,
		})
	}
	return buckets
}

func sortRecentFirst(payrolls []payroll.Payroll) {
	sort.SliceStable(payrolls, func(i, j int) bool {
		if payrolls[i].Year != payrolls[j].Year {
			return payrolls[i].Year > payrolls[j].Year
		}
		return payroll.MonthNumber(payrolls[i].Month) > payroll.MonthNumber(payrolls[j].Month)
	})
}

func mapEmployee(emp employee.Employee) EmployeeRecord {
	return EmployeeRecord{
		ID:         emp.ID.String(),
		Name:       emp.Name,
		Email:      emp.Email,
		Position:   emp.Position,
		Department: emp.Department,
		Status:     emp.Status,
		JoinDate:   emp.JoinDate,
	}
}

func mapAttendanceDay(day attendance.AttendanceDay, emp *employee.Employee) AttendanceRecord {
	rec := AttendanceRecord{
		Date:          day.Date,
		Status:        day.Status,
		EmployeeName:  emp.Name,
		EmployeeEmail: day.EmployeeEmail,
		Department:    emp.Department,
		Position:      emp.Position,
	}
	if day.ClockIn != nil {
		rec.ClockIn = *day.ClockIn
	}
	if day.ClockOut != nil {
		rec.ClockOut = *day.ClockOut
	}
	return rec
}

func mapLeave(l leave.Leave, byEmail map[string]*employee.Employee) LeaveRecord {
	rec := LeaveRecord{
		ID:            l.ID.String(),
		EmployeeName:  l.EmployeeName,
		EmployeeEmail: l.EmployeeEmail,
		Department:    "N/A",
		Position:      "N/A",
		Type:          l.Type,
		StartDate:     l.StartDate,
		EndDate:       l.EndDate,
		Reason:        l.Reason,
		Status:        l.Status,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
	}
	if emp, ok := byEmail[l.EmployeeEmail]; ok {
		rec.EmployeeName = emp.Name
		rec.Department = emp.Department
		rec.Position = emp.Position
	}
	return rec
}

func mapSelfLeave(l leave.Leave, emp *employee.Employee) LeaveRecord {
	rec := mapLeave(l, nil)
	rec.EmployeeName = emp.Name
	rec.Department = emp.Department
	rec.Position = emp.Position
	return rec
}

func mapPayrollRow(p payroll.Payroll) PayrollRecord {
	rec := PayrollRecord{
		ID:           p.ID.String(),
		EmployeeID:   p.EmployeeID.String(),
		Month:        p.Month,
		Year:         p.Year,
		TotalPayable: p.TotalPayable,
		Status:       p.Status,
	}
	if p.Employee != nil {
		rec.EmployeeName = p.Employee.Name
		rec.Department = p.Employee.Department
	}
	return rec
}
