package service

import "math"

// roundUnit rounds a value to the nearest whole currency unit.
func roundUnit(value float64) float64 {
	return math.Round(value)
}

// round1Decimal rounds a value to one decimal place.
func round1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// MonthlyEMI returns the fixed monthly installment for a loan, rounded to
// the nearest currency unit. A non-positive principal, rate, or tenure is a
// degenerate loan and yields 0.
func MonthlyEMI(principal, annualRate float64, tenureMonths int) float64 {
	if principal <= 0 || annualRate <= 0 || tenureMonths <= 0 {
		return 0
	}

	monthlyRate := (annualRate / 100) / 12
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))

	return roundUnit(principal * monthlyRate * factor / (factor - 1))
}

// BaselineTotals returns the interest and total amount paid when the loan
// runs to full tenure with no prepayment. Because the EMI is constant this
// is the closed-form sum of the schedule: EMI x months - principal.
func BaselineTotals(principal, annualRate float64, tenureMonths int) (totalInterest, totalAmount float64) {
	emi := MonthlyEMI(principal, annualRate, tenureMonths)
	totalInterest = math.Max(0, emi*float64(tenureMonths)-principal)
	totalAmount = principal + totalInterest
	return roundUnit(totalInterest), roundUnit(totalAmount)
}
