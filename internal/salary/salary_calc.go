package salary

// Allowances are the additive components on top of base salary.
type Allowances struct {
	HRA     float64 `json:"hra"`
	Travel  float64 `json:"travel"`
	Medical float64 `json:"medical"`
}

// Deductions are subtracted from gross.
type Deductions struct {
	PF        float64 `json:"pf"`
	Tax       float64 `json:"tax"`
	Insurance float64 `json:"insurance"`
}

// Calculate derives gross and net from the structure's inputs. Net is NOT
// floored at zero: deductions exceeding gross produce a negative net, which
// callers surface as-is.
func Calculate(base float64, a Allowances, d Deductions) (gross, net float64) {
	gross = base + a.HRA + a.Travel + a.Medical
	net = gross - (d.PF + d.Tax + d.Insurance)
	return gross, net
}
