package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/cespare/xxhash/v2"

	"emi-calculator/domain"
	"emi-calculator/repository"
)

type SimulationService struct {
	repo  repository.SimulationRepository
	cache repository.CacheRepository
}

// NewSimulationService creates a SimulationService backed by the given
// result store and memoization cache.
func NewSimulationService(repo repository.SimulationRepository,
	cache repository.CacheRepository,
) *SimulationService {
	return &SimulationService{repo: repo, cache: cache}
}

// Simulate runs the amortization for the given parameters and derives the
// savings against the no-prepayment baseline. Results are memoized by
// input, so repeated calls with unchanged parameters skip the month loop.
func (s *SimulationService) Simulate(
	input domain.SimulationInput,
) (domain.SimulationResult, error) {

	input = sanitize(input)

	if input.Principal > MaxLoanAmount {
		return domain.SimulationResult{}, fmt.Errorf("loan amount exceeds the maximum of %.0f", MaxLoanAmount)
	}
	if input.AnnualRate > MaxInterestRate {
		return domain.SimulationResult{}, fmt.Errorf("interest rate exceeds the maximum of %.0f%%", MaxInterestRate)
	}
	if input.TenureMonths > MaxTenureMonths {
		return domain.SimulationResult{}, fmt.Errorf("tenure exceeds the maximum of %d months", MaxTenureMonths)
	}
	if !validSlab(input.TaxSlabPercent) {
		return domain.SimulationResult{}, errors.New("invalid tax slab")
	}

	key := cacheKey(input)
	if raw, ok := s.cache.Get(key); ok {
		var cached domain.SimulationResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	emi := MonthlyEMI(input.Principal, input.AnnualRate, input.TenureMonths)
	baselineInterest, baselineAmount := BaselineTotals(input.Principal, input.AnnualRate, input.TenureMonths)

	run := amortize(input, emi)

	monthsSaved := input.TenureMonths - run.MonthsElapsed
	if monthsSaved < 0 {
		monthsSaved = 0
	}

	result := domain.SimulationResult{
		EMI:                   emi,
		BaselineTotalInterest: baselineInterest,
		BaselineTotalAmount:   baselineAmount,
		TotalInterest:         roundUnit(run.InterestPaid),
		TotalAmount:           roundUnit(run.PrincipalPaid + run.InterestPaid),
		MonthsElapsed:         run.MonthsElapsed,
		InterestSaved:         roundUnit(math.Max(0, baselineInterest-run.InterestPaid)),
		MonthsSaved:           monthsSaved,
		YearsSaved:            round1Decimal(float64(monthsSaved) / 12),
		FullyAmortized:        run.FullyAmortized,
		Schedule:              run.Schedule,
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			log.Printf("Warning: failed to cache simulation result: %v", err)
		}
	}

	// Recording the result is not critical.
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save simulation: %v", err)
	}

	return result, nil
}

// sanitize clamps raw parameters to the non-negative finite values the
// simulator assumes. Negative or non-numeric values become zero; the
// prepayment start year is floored at year one.
func sanitize(input domain.SimulationInput) domain.SimulationInput {
	input.Principal = clampAmount(input.Principal)
	input.AnnualRate = clampAmount(input.AnnualRate)
	input.MonthlyPrepayment = clampAmount(input.MonthlyPrepayment)
	input.AnnualPrepayment = clampAmount(input.AnnualPrepayment)
	input.TaxSlabPercent = clampAmount(input.TaxSlabPercent)

	if input.TenureMonths < 0 {
		input.TenureMonths = 0
	}
	if input.PrepaymentStartYear < 1 {
		input.PrepaymentStartYear = 1
	}
	return input
}

func clampAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

func validSlab(slab float64) bool {
	switch slab {
	case 0, 10, 20, 30:
		return true
	}
	return false
}

// cacheKey derives a stable memoization key from the sanitized input.
func cacheKey(input domain.SimulationInput) string {
	digest := xxhash.Sum64String(fmt.Sprintf("%g|%g|%d|%g|%g|%d|%g",
		input.Principal,
		input.AnnualRate,
		input.TenureMonths,
		input.MonthlyPrepayment,
		input.AnnualPrepayment,
		input.PrepaymentStartYear,
		input.TaxSlabPercent,
	))
	return fmt.Sprintf("simulate:%016x", digest)
}
