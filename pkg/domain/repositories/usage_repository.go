package repositories

import (
	"context"
	"time"

	"github.com/vailmont/printops/pkg/domain/entities"
)

// UsageRepository provides access to the append-only filament
// consumption log.
type UsageRepository interface {
	// UsageSince returns consumption records at or after the given
	// time, oldest first.
	UsageSince(ctx context.Context, since time.Time) ([]entities.UsageRecord, error)
	LoadUsage(ctx context.Context, records []entities.UsageRecord) error
}
