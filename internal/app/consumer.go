package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka/consumer"
	"go-ems/internal/payroll"
	"go-ems/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders payslip PDFs for paid payrolls announced on the
// payslip-requested topic.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	outputDir := os.Getenv("PAYSLIP_DIR")
	if outputDir == "" {
		outputDir = "payslips"
	}

	payrollRepo := payroll.NewRepository(gormDB)
	generator := payroll.NewPayslipGenerator(payrollRepo, outputDir, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayrollPayslipRequestedTopic,
		GroupID:        "go-ems-payslip",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollPayslipRequested(ctx, reader, generator, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
