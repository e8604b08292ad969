package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/repositories"
)

// UsageRepository provides in-memory storage of the consumption log
type UsageRepository struct {
	records []entities.UsageRecord
}

// NewUsageRepository creates a new in-memory usage repository
func NewUsageRepository() *UsageRepository {
	return &UsageRepository{}
}

// Verify interface compliance
var _ repositories.UsageRepository = (*UsageRepository)(nil)

// LoadUsage appends consumption records to the log
func (r *UsageRepository) LoadUsage(ctx context.Context, records []entities.UsageRecord) error {
	r.records = append(r.records, records...)
	return nil
}

// UsageSince returns records at or after the given time, oldest first
func (r *UsageRepository) UsageSince(ctx context.Context, since time.Time) ([]entities.UsageRecord, error) {
	var out []entities.UsageRecord
	for _, record := range r.records {
		if !record.At.Before(since) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out, nil
}
