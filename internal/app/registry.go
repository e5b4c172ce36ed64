package app

import (
	"go-ems/internal/attendance"
	"go-ems/internal/auth"
	"go-ems/internal/employee"
	"go-ems/internal/leave"
	"go-ems/internal/meeting"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/middleware"
	"go-ems/internal/payroll"
	"go-ems/internal/rbac"
	"go-ems/internal/reports"
	"go-ems/internal/salary"
	"go-ems/internal/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	meetingRepo := meeting.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	clk := clock.System()

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo, logger)
	employeeService := employee.NewService(employeeRepo, rdb, logger)
	attendanceService := attendance.NewService(attendanceRepo, logger)
	leaveService := leave.NewService(leaveRepo, employeeRepo, clk, logger)
	meetingService := meeting.NewService(meetingRepo, logger)
	salaryService := salary.NewService(salaryRepo, employeeRepo, logger)
	payrollService := payroll.NewService(payrollRepo, salaryRepo, employeeRepo, outboxRepo, clk, logger)
	reportsService := reports.NewService(employeeRepo, attendanceRepo, leaveRepo, payrollRepo, clk, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	meetingHandler := meeting.NewHandler(meetingService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	payrollHandler := payroll.NewHandler(payrollService, rdb, logger)
	reportsHandler := reports.NewHandler(reportsService, logger)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		meeting.RegisterRoutes(api, meetingHandler, rbacService, logger)
		salary.RegisterRoutes(api, salaryHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, logger)
		reports.RegisterRoutes(api, reportsHandler, rbacService, logger)
	}

	return nil
}
