package domain

type SimulationInput struct {
	Principal           float64
	AnnualRate          float64
	TenureMonths        int
	MonthlyPrepayment   float64
	AnnualPrepayment    float64
	PrepaymentStartYear int
	TaxSlabPercent      float64
}

// YearlySummary aggregates one loan-year of the prepayment schedule.
type YearlySummary struct {
	Year           int
	PrincipalPaid  float64
	InterestPaid   float64
	ClosingBalance float64
	TaxSaved       float64
}

type SimulationResult struct {
	EMI float64

	// Closed-form totals for the loan run to full tenure with no prepayment.
	BaselineTotalInterest float64
	BaselineTotalAmount   float64

	// Totals under the prepayment plan.
	TotalInterest float64
	TotalAmount   float64
	MonthsElapsed int

	InterestSaved float64
	MonthsSaved   int
	YearsSaved    float64

	// False when the iteration ceiling was hit before payoff.
	FullyAmortized bool

	Schedule []YearlySummary
}
