// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prabodha-fernando/autoslot/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var sequenceAllocations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "autoslot_sequence_allocations_total",
		Help: "Total number of sequence number allocations by counter and outcome",
	},
	[]string{"counter", "status"},
)

// SequenceRepositoryImpl implements SequenceRepository interface
type SequenceRepositoryImpl struct {
	*BaseRepository[models.SequenceCounter, struct{}]
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &SequenceRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SequenceCounter, struct{}](db),
	}
}

// Next allocates the next value of the named counter. The first allocation
// initializes the counter to start; later allocations increment by one. The
// whole operation is a single upsert so concurrent callers can never observe
// the same value, and the configured start is ignored once the row exists.
func (r *SequenceRepositoryImpl) Next(ctx context.Context, name string, start int64) (int64, error) {
	db := r.getDB(ctx)

	var value int64
	err := db.Raw(`
		INSERT INTO sequence_counters (name, last_value, created_at, updated_at)
		VALUES (?, ?, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE
		SET last_value = sequence_counters.last_value + 1,
		    updated_at = NOW()
		RETURNING last_value
	`, name, start).Scan(&value).Error
	if err != nil {
		sequenceAllocations.WithLabelValues(name, "error").Inc()
		return 0, fmt.Errorf("failed to allocate next value for counter %s: %w", name, err)
	}

	sequenceAllocations.WithLabelValues(name, "ok").Inc()
	return value, nil
}

// Current returns the counter row, or nil when no allocation happened yet.
func (r *SequenceRepositoryImpl) Current(ctx context.Context, name string) (*models.SequenceCounter, error) {
	db := r.getDB(ctx)

	var counter models.SequenceCounter
	err := db.Where("name = ?", name).First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read counter %s: %w", name, err)
	}

	return &counter, nil
}
