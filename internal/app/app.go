package app

import (
	"os"

	"go-ems/internal/attendance"
	"go-ems/internal/auth"
	"go-ems/internal/employee"
	"go-ems/internal/leave"
	"go-ems/internal/meeting"
	"go-ems/internal/payroll"
	"go-ems/internal/salary"
	"go-ems/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const outboxTableDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id            UUID PRIMARY KEY,
	request_id    VARCHAR(64)  NOT NULL DEFAULT '',
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id  VARCHAR(64)  NOT NULL,
	event_type    VARCHAR(100) NOT NULL,
	topic         VARCHAR(200) NOT NULL,
	payload       JSONB        NOT NULL,
	status        VARCHAR(20)  NOT NULL DEFAULT 'pending',
	retry_count   INT          NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at  TIMESTAMPTZ,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
	ON outbox_events (status, created_at);
`

// BuildApp connects the infrastructure, runs migrations and registers every
// module's routes on the router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}
	logger.Info("migrations applied")

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, gormDB, rdb, logger)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&attendance.AttendanceDay{},
		&leave.Leave{},
		&meeting.Meeting{},
		&salary.Salary{},
		&payroll.Payroll{},
	); err != nil {
		return err
	}
	// The outbox is read through database/sql, outside gorm's model set.
	return gormDB.Exec(outboxTableDDL).Error
}
