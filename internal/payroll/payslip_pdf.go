package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// PayslipGenerator renders a paid payroll into a PDF on disk. It runs in the
// consumer process, not in the request path.
type PayslipGenerator struct {
	repo      Repository
	outputDir string
	logger    *zap.Logger
}

func NewPayslipGenerator(repo Repository, outputDir string, logger ...*zap.Logger) *PayslipGenerator {
	l := zap.L().Named("payroll.payslip")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.payslip")
	}
	return &PayslipGenerator{repo: repo, outputDir: outputDir, logger: l}
}

// Generate writes the payslip PDF and returns its path.
func (g *PayslipGenerator) Generate(ctx context.Context, payrollID string) (string, error) {
	p, err := g.repo.FindByID(ctx, payrollID)
	if err != nil {
		return "", mapRepositoryError(err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Payslip", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s %d", p.Month, p.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if p.Employee != nil {
		g.row(pdf, "Employee", p.Employee.Name)
		g.row(pdf, "Email", p.Employee.Email)
		if p.Employee.Department != "" {
			g.row(pdf, "Department", p.Employee.Department)
		}
		pdf.Ln(4)
	}

	g.row(pdf, "Base Salary", money(p.BaseSalary))
	g.row(pdf, "Gross Salary", money(p.GrossSalary))
	g.row(pdf, "Net Salary", money(p.NetSalary))
	g.row(pdf, "Bonus", money(p.Bonus))
	g.row(pdf, "Overtime Hours", fmt.Sprintf("%.1f", p.OvertimeHours))
	g.row(pdf, "Overtime Pay", money(p.OvertimePay))

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	g.row(pdf, "Total Payable", money(p.TotalPayable))
	pdf.SetFont("Arial", "", 11)

	pdf.Ln(4)
	g.row(pdf, "Status", p.Status)
	if p.PaymentDate != nil {
		g.row(pdf, "Payment Date", p.PaymentDate.Format("2006-01-02"))
	}
	if p.PaymentMode != "" {
		g.row(pdf, "Payment Mode", p.PaymentMode)
	}
	if p.TransactionID != "" {
		g.row(pdf, "Transaction ID", p.TransactionID)
	}

	path := filepath.Join(g.outputDir, fmt.Sprintf("payslip_%s.pdf", p.ID.String()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		g.logger.Error("payslip render failed", zap.String("payroll_id", payrollID), zap.Error(err))
		return "", err
	}

	g.logger.Info("payslip rendered",
		zap.String("payroll_id", payrollID),
		zap.String("path", path),
	)
	return path, nil
}

func (g *PayslipGenerator) row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 8, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
