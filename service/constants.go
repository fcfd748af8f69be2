package service

const (
	MaxLoanAmount    = 1_000_000_000.0 // 100 crore
	MaxInterestRate  = 100.0           // 100% annual
	MaxTenureMonths  = 600             // 50 years
	BalanceTolerance = 0.1             // balance at or below this counts as paid off

	// Simulation never runs past max(2x tenure, this floor) months.
	IterationCeilingFloor = 1200

	// Per-year statutory deduction caps (sections 80C and 24b).
	PrincipalDeductionCap = 150_000.0
	InterestDeductionCap  = 200_000.0
)
