package materials

import (
	"math"
	"sort"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/services"
)

// AvailabilityStatus classifies material coverage for an order
type AvailabilityStatus string

const (
	// StatusAvailable means stock covers the requirement at least twice over.
	StatusAvailable AvailabilityStatus = "available"
	// StatusLow means stock covers the requirement but less than twice over.
	StatusLow AvailabilityStatus = "low"
	// StatusMissing means stock does not cover the requirement, or a
	// required reference object (the product definition) is absent.
	StatusMissing AvailabilityStatus = "missing"
	// StatusUntracked marks materials whose stock is not checked.
	// External parts are untracked in the current design.
	StatusUntracked AvailabilityStatus = "untracked"
)

// MaterialDetail represents coverage of one material for an order
type MaterialDetail struct {
	Material  string             `json:"material"`
	Kind      entities.StockKind `json:"kind"`
	Needed    float64            `json:"needed"`
	Available float64            `json:"available"`
	Ratio     float64            `json:"ratio"`
	Status    AvailabilityStatus `json:"status"`
}

// AvailabilityResult represents per-order material availability. The
// overall status is the worst status across tracked materials.
type AvailabilityResult struct {
	Status  AvailabilityStatus `json:"status"`
	Details []MaterialDetail   `json:"details"`
}

// CheckAvailability compares an order's material requirement against
// current stock. A nil product is the one legitimate failure in this
// package and yields an explicit missing status rather than an error.
//
// Filament stock for the requested color is summed across all owners;
// colors match fuzzily. External parts are reported as untracked and
// excluded from the overall status.
func CheckAvailability(order entities.Order, product *entities.Product, filamentsByOwner map[string][]entities.FilamentStock) AvailabilityResult {
	if product == nil {
		return AvailabilityResult{Status: StatusMissing}
	}

	requirement := ResolveRequirements(order, *product)

	color := order.Color
	if color == "" {
		color = product.DefaultColor
	}

	available := availableGrams(color, filamentsByOwner)
	ratio := math.Inf(1)
	if requirement.FilamentGrams > 0 {
		ratio = available / requirement.FilamentGrams
	}

	filamentStatus := StatusAvailable
	switch {
	case ratio < 1:
		filamentStatus = StatusMissing
	case ratio < 2:
		filamentStatus = StatusLow
	}

	details := []MaterialDetail{{
		Material:  color,
		Kind:      entities.KindFilament,
		Needed:    requirement.FilamentGrams,
		Available: available,
		Ratio:     ratio,
		Status:    filamentStatus,
	}}

	for _, part := range requirement.Parts {
		details = append(details, MaterialDetail{
			Material: part.Name,
			Kind:     entities.KindSupply,
			Needed:   float64(part.Quantity),
			Status:   StatusUntracked,
		})
	}

	return AvailabilityResult{Status: worstStatus(details), Details: details}
}

// availableGrams sums stock across owners for entries whose color
// fuzzily matches. Owners are visited in sorted order so the result
// is deterministic.
func availableGrams(color string, filamentsByOwner map[string][]entities.FilamentStock) float64 {
	owners := make([]string, 0, len(filamentsByOwner))
	for owner := range filamentsByOwner {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	total := 0.0
	for _, owner := range owners {
		for _, stock := range filamentsByOwner[owner] {
			if services.ColorsMatch(stock.Color, color) {
				total += stock.TotalGrams()
			}
		}
	}
	return total
}

// worstStatus collapses tracked detail statuses into the overall
// order status. Untracked materials carry no signal either way.
func worstStatus(details []MaterialDetail) AvailabilityStatus {
	worst := StatusAvailable
	for _, detail := range details {
		switch detail.Status {
		case StatusMissing:
			return StatusMissing
		case StatusLow:
			worst = StatusLow
		}
	}
	return worst
}
