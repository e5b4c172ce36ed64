package payroll_test

import (
	"testing"

	"go-ems/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Run("overtime at time and a half", func(t *testing.T) {
		// hourly rate = 50000/176 ≈ 284.09
		overtimePay, totalPayable := payroll.Calculate(50000, 52700, 2000, 10)

		assert.InDelta(t, 4261.36, overtimePay, 0.01)
		assert.InDelta(t, 58961.36, totalPayable, 0.01)
	})

	t.Run("no overtime, no bonus", func(t *testing.T) {
		overtimePay, totalPayable := payroll.Calculate(50000, 52700, 0, 0)

		assert.Equal(t, 0.0, overtimePay)
		assert.Equal(t, 52700.0, totalPayable)
	})

	t.Run("negative net flows through", func(t *testing.T) {
		overtimePay, totalPayable := payroll.Calculate(1000, -500, 0, 0)

		assert.Equal(t, 0.0, overtimePay)
		assert.Equal(t, -500.0, totalPayable)
	})
}
