package service

import (
	"math"

	"emi-calculator/domain"
)

// amortizationRun is the raw outcome of the month-by-month simulation.
type amortizationRun struct {
	Schedule       []domain.YearlySummary
	PrincipalPaid  float64
	InterestPaid   float64
	MonthsElapsed  int
	FullyAmortized bool
}

// yearlyTaxSaved estimates the income tax saved by one loan-year's
// repayments: interest and principal are deductible up to their statutory
// caps, at the borrower's slab rate.
func yearlyTaxSaved(principalPaid, interestPaid, slabPercent float64) float64 {
	deductible := math.Min(interestPaid, InterestDeductionCap) +
		math.Min(principalPaid, PrincipalDeductionCap)
	return roundUnit(deductible * slabPercent / 100)
}

// amortize walks the loan month by month under the prepayment plan,
// closing a YearlySummary bucket at every year boundary and at payoff.
//
// Monthly prepayments apply once the month index reaches startYear*12;
// annual prepayments land on the 12th month of each year from startYear on.
// The last payment is clamped so the balance lands exactly on zero. If the
// parameters never amortize (e.g. zero rate with zero EMI and no
// prepayment), the loop stops at the iteration ceiling and the run is
// reported as not fully amortized.
func amortize(input domain.SimulationInput, emi float64) amortizationRun {
	ceiling := 2 * input.TenureMonths
	if ceiling < IterationCeilingFloor {
		ceiling = IterationCeilingFloor
	}

	monthlyRate := (input.AnnualRate / 100) / 12
	balance := input.Principal

	run := amortizationRun{Schedule: []domain.YearlySummary{}}
	yearPrincipal := 0.0
	yearInterest := 0.0

	for balance > BalanceTolerance && run.MonthsElapsed < ceiling {
		run.MonthsElapsed++
		month := run.MonthsElapsed

		interest := balance * monthlyRate
		payment := emi

		if month >= input.PrepaymentStartYear*12 {
			payment += input.MonthlyPrepayment
		}
		if month%12 == 0 && month/12 >= input.PrepaymentStartYear {
			payment += input.AnnualPrepayment
		}

		// Final-month clamp: never pay past a zero balance.
		if payment > balance+interest {
			payment = balance + interest
		}

		principal := payment - interest
		balance -= principal

		run.InterestPaid += interest
		run.PrincipalPaid += principal
		yearInterest += interest
		yearPrincipal += principal

		if month%12 == 0 || balance <= BalanceTolerance {
			run.Schedule = append(run.Schedule, domain.YearlySummary{
				Year:           (month + 11) / 12,
				PrincipalPaid:  roundUnit(yearPrincipal),
				InterestPaid:   roundUnit(yearInterest),
				ClosingBalance: roundUnit(math.Max(0, balance)),
				TaxSaved:       yearlyTaxSaved(yearPrincipal, yearInterest, input.TaxSlabPercent),
			})
			yearPrincipal = 0
			yearInterest = 0
		}
	}

	run.FullyAmortized = balance <= BalanceTolerance
	return run
}
