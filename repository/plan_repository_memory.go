package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"credit-engine/domain"
)

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu      sync.Mutex
	records []domain.PlanRecord
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		records: []domain.PlanRecord{},
	}
}

// Save stamps the record with an ID and timestamp and keeps it in memory.
func (r *PlanRepositoryMemory) Save(record domain.PlanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	r.records = append(r.records, record)
	return nil
}
