package repository

import "emi-calculator/domain"

type SimulationRepository interface {
	Save(input domain.SimulationInput, result domain.SimulationResult) error
}
