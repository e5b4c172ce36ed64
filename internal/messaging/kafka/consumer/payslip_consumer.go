package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-ems/internal/events"
	"go-ems/internal/payroll"
	payrollerrors "go-ems/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePayrollPayslipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	generator *payroll.PayslipGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll payslip consumer stopped")
				return
			}
			log.Error("fetch payroll payslip message failed", zap.Error(err))
			continue
		}

		var event events.PayrollPayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_payslip_requested event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		path, err := generator.Generate(ctx, event.PayrollID)
		if err != nil {
			if errors.Is(err, payrollerrors.ErrPayrollNotFound) {
				log.Warn("payroll for payslip event no longer exists, skipping",
					zap.String("payroll_id", event.PayrollID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("generate payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll payslip message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated from event",
			zap.String("payroll_id", event.PayrollID),
			zap.String("path", path),
		)
	}
}
