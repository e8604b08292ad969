package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/services"
)

const (
	// DefaultWindow is the trailing window over which consumption is
	// averaged.
	DefaultWindow = 30 * 24 * time.Hour
	// DefaultReorderGrams applies to filament entries without an
	// explicit reorder threshold.
	DefaultReorderGrams = 250.0
	// FinishedGoodsThreshold is the stock count at or below which a
	// product variant is listed.
	FinishedGoodsThreshold = 3

	criticalDays = 7
	lowDays      = 14
	watchDays    = 30
)

// ConsumptionRate returns the average grams-per-day consumption of a
// color over the trailing window ending at now. History entries match
// the color fuzzily. No matching entries yields rate 0.
func ConsumptionRate(color string, history []entities.UsageRecord, window time.Duration, now time.Time) float64 {
	if window <= 0 {
		window = DefaultWindow
	}
	cutoff := now.Add(-window)

	total := 0.0
	for _, record := range history {
		if record.At.Before(cutoff) || record.At.After(now) {
			continue
		}
		if services.ColorsMatch(record.Color, color) {
			total += record.Grams
		}
	}
	if total <= 0 {
		return 0
	}
	return total / (window.Hours() / 24)
}

// DaysUntilStockout forecasts depletion of a filament entry at the
// given consumption rate. A rate of zero or less returns nil: without
// observed consumption the forecast is unknown, which is distinct
// from zero risk.
func DaysUntilStockout(stock entities.FilamentStock, rate float64) *int {
	if rate <= 0 {
		return nil
	}
	days := int(math.Floor(stock.TotalGrams() / rate))
	return &days
}

// Engine computes the combined low-stock report across filaments,
// external supplies and finished-goods counts.
type Engine struct {
	window time.Duration
}

// NewEngine creates a forecasting engine with the given consumption
// window; zero means DefaultWindow.
func NewEngine(window time.Duration) *Engine {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Engine{window: window}
}

// LowStock classifies every stock item against its threshold and
// forecasted depletion and returns the combined, urgency-sorted list.
//
// Filament entries qualify only when at or below their reorder
// threshold with zero backup rolls. An entry with abundant backups is
// excluded even if its effective days-until-stockout is low; that
// asymmetry is intentional, matching the restocking workflow where a
// backup roll on the shelf means the reorder already happened.
func (e *Engine) LowStock(
	filamentsByOwner map[string][]entities.FilamentStock,
	partsByOwner map[string][]entities.PartStock,
	productStock []entities.ProductStock,
	history []entities.UsageRecord,
	now time.Time,
) []entities.LowStockItem {
	var items []entities.LowStockItem

	for _, owner := range sortedOwners(filamentsByOwner) {
		for _, filament := range filamentsByOwner[owner] {
			if item, ok := e.classifyFilament(owner, filament, history, now); ok {
				items = append(items, item)
			}
		}
	}

	for _, owner := range sortedOwners(partsByOwner) {
		for _, part := range partsByOwner[owner] {
			if part.Quantity <= part.ReorderAt {
				items = append(items, entities.LowStockItem{
					Kind:      entities.KindSupply,
					Name:      part.Name,
					Owner:     owner,
					Current:   float64(part.Quantity),
					Threshold: float64(part.ReorderAt),
					Urgency:   entities.UrgencyWatch,
				})
			}
		}
	}

	for _, stock := range productStock {
		if stock.Count > FinishedGoodsThreshold {
			continue
		}
		urgency := entities.UrgencyLow
		if stock.Count == 0 {
			urgency = entities.UrgencyCritical
		}
		items = append(items, entities.LowStockItem{
			Kind:      entities.KindModel,
			Name:      stock.DisplayName(),
			Current:   float64(stock.Count),
			Threshold: FinishedGoodsThreshold,
			Urgency:   urgency,
		})
	}

	sortItems(items)
	return items
}

func (e *Engine) classifyFilament(owner string, filament entities.FilamentStock, history []entities.UsageRecord, now time.Time) (entities.LowStockItem, bool) {
	threshold := filament.ReorderAt
	if threshold <= 0 {
		threshold = DefaultReorderGrams
	}
	if filament.AmountGrams > threshold || filament.BackupRolls > 0 {
		return entities.LowStockItem{}, false
	}

	rate := ConsumptionRate(filament.Color, history, e.window, now)
	days := DaysUntilStockout(filament, rate)

	urgency := entities.UrgencyWatch
	if days != nil {
		switch {
		case *days < criticalDays:
			urgency = entities.UrgencyCritical
		case *days < lowDays:
			urgency = entities.UrgencyLow
		case *days < watchDays:
			urgency = entities.UrgencyWatch
		}
	}

	return entities.LowStockItem{
		Kind:       entities.KindFilament,
		Name:       filament.Color,
		Owner:      owner,
		Current:    filament.AmountGrams,
		Threshold:  threshold,
		Urgency:    urgency,
		DaysLeft:   days,
		DailyUsage: rate,
	}, true
}

// sortItems orders the report by urgency rank, then among items that
// both carry a days-until-stockout forecast by ascending days; a
// known forecast sorts before an unknown one when ranks tie.
func sortItems(items []entities.LowStockItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Urgency.Rank(), items[j].Urgency.Rank()
		if ri != rj {
			return ri < rj
		}
		di, dj := items[i].DaysLeft, items[j].DaysLeft
		switch {
		case di != nil && dj != nil:
			return *di < *dj
		case di != nil:
			return true
		default:
			return false
		}
	})
}

// sortedOwners keeps map iteration deterministic; identical inputs
// must produce byte-identical reports.
func sortedOwners[T any](byOwner map[string][]T) []string {
	owners := make([]string, 0, len(byOwner))
	for owner := range byOwner {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}
