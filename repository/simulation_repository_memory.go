package repository

import "emi-calculator/domain"

// SimulationRepositoryMemory keeps the session's computed results in memory.
type SimulationRepositoryMemory struct {
	data []domain.SimulationResult
}

// NewSimulationRepositoryMemory creates a new in-memory simulation store.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		data: []domain.SimulationResult{},
	}
}

// Save stores the simulation result in memory.
func (r *SimulationRepositoryMemory) Save(
	input domain.SimulationInput,
	result domain.SimulationResult,
) error {
	r.data = append(r.data, result)
	return nil
}
