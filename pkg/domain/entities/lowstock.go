package entities

// StockKind identifies the kind of item a low-stock entry refers to
type StockKind string

const (
	KindFilament StockKind = "filament"
	KindSupply   StockKind = "supply"
	KindModel    StockKind = "model"
)

// Urgency classifies restock priority
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyLow      Urgency = "low"
	UrgencyWatch    Urgency = "watch"
)

// Rank returns the sort rank of an urgency level; lower ranks sort
// first. Unknown values rank last.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyLow:
		return 1
	case UrgencyWatch:
		return 2
	default:
		return 3
	}
}

// LowStockItem represents one entry of the low-stock forecast report.
// DaysLeft is nil when no consumption has been observed, which is
// "unknown" rather than zero risk.
type LowStockItem struct {
	Kind       StockKind `json:"kind"`
	Name       string    `json:"name"`
	Owner      string    `json:"owner,omitempty"`
	Current    float64   `json:"current"`
	Threshold  float64   `json:"threshold"`
	Urgency    Urgency   `json:"urgency"`
	DaysLeft   *int      `json:"daysLeft,omitempty"`
	DailyUsage float64   `json:"dailyUsage,omitempty"`
}
