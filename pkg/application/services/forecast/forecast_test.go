package forecast

import (
	"testing"
	"time"

	"github.com/vailmont/printops/pkg/domain/entities"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func usageAt(color string, grams float64, daysAgo int) entities.UsageRecord {
	return entities.UsageRecord{
		Color: color,
		Grams: grams,
		At:    testNow.Add(-time.Duration(daysAgo) * 24 * time.Hour),
	}
}

func TestConsumptionRate(t *testing.T) {
	history := []entities.UsageRecord{
		usageAt("Black", 300, 5),
		usageAt("black", 300, 10),     // case-insensitive match
		usageAt("Matte Black", 0, 12), // zero usage is harmless
		usageAt("Black", 600, 45),     // outside the 30-day window
		usageAt("Red", 500, 3),        // different color
	}

	rate := ConsumptionRate("Black", history, DefaultWindow, testNow)
	expected := 600.0 / 30.0
	if rate != expected {
		t.Errorf("Expected rate %v, got %v", expected, rate)
	}
}

func TestConsumptionRate_NoHistory(t *testing.T) {
	if rate := ConsumptionRate("Black", nil, DefaultWindow, testNow); rate != 0 {
		t.Errorf("Expected zero rate with no history, got %v", rate)
	}
}

func TestDaysUntilStockout(t *testing.T) {
	stock := entities.FilamentStock{AmountGrams: 500}

	days := DaysUntilStockout(stock, 50)
	if days == nil || *days != 10 {
		t.Errorf("Expected 10 days, got %v", days)
	}

	// Zero rate means the forecast is unknown, not zero risk.
	if days := DaysUntilStockout(stock, 0); days != nil {
		t.Errorf("Expected nil for zero rate, got %d", *days)
	}

	// Backup rolls extend the runway.
	withBackups := entities.FilamentStock{AmountGrams: 500, BackupRolls: 1}
	days = DaysUntilStockout(withBackups, 50)
	if days == nil || *days != 30 {
		t.Errorf("Expected 30 days with a backup roll, got %v", days)
	}
}

func TestEngine_LowStock_FilamentUrgency(t *testing.T) {
	engine := NewEngine(0)

	// 100g on hand, consuming 20g/day: 5 days left, critical.
	filaments := map[string][]entities.FilamentStock{
		"alex": {{Color: "Black", AmountGrams: 100, ReorderAt: 250}},
	}
	history := []entities.UsageRecord{
		usageAt("Black", 300, 5),
		usageAt("Black", 300, 10),
	}

	items := engine.LowStock(filaments, nil, nil, history, testNow)
	if len(items) != 1 {
		t.Fatalf("Expected one low-stock item, got %d", len(items))
	}

	item := items[0]
	if item.Urgency != entities.UrgencyCritical {
		t.Errorf("Expected critical urgency, got %s", item.Urgency)
	}
	if item.DaysLeft == nil || *item.DaysLeft != 5 {
		t.Errorf("Expected 5 days left, got %v", item.DaysLeft)
	}
	if item.Kind != entities.KindFilament || item.Owner != "alex" {
		t.Errorf("Unexpected item identity: %+v", item)
	}
}

func TestEngine_LowStock_BackupRollsExcludeFilament(t *testing.T) {
	engine := NewEngine(0)

	filaments := map[string][]entities.FilamentStock{
		"alex": {{Color: "Black", AmountGrams: 100, ReorderAt: 250, BackupRolls: 2}},
	}
	history := []entities.UsageRecord{usageAt("Black", 3000, 5)}

	// Heavy consumption, but backups on the shelf exclude the entry.
	items := engine.LowStock(filaments, nil, nil, history, testNow)
	if len(items) != 0 {
		t.Errorf("Expected no items for filament with backups, got %+v", items)
	}
}

func TestEngine_LowStock_NoUsageIsWatch(t *testing.T) {
	engine := NewEngine(0)

	filaments := map[string][]entities.FilamentStock{
		"alex": {{Color: "Teal", AmountGrams: 200}}, // default 250g threshold
	}

	items := engine.LowStock(filaments, nil, nil, nil, testNow)
	if len(items) != 1 {
		t.Fatalf("Expected one item, got %d", len(items))
	}
	if items[0].Urgency != entities.UrgencyWatch {
		t.Errorf("Expected watch urgency without usage data, got %s", items[0].Urgency)
	}
	if items[0].DaysLeft != nil {
		t.Errorf("Expected unknown days-left, got %d", *items[0].DaysLeft)
	}
}

func TestEngine_LowStock_SuppliesAndModels(t *testing.T) {
	engine := NewEngine(0)

	parts := map[string][]entities.PartStock{
		"alex": {
			{Name: "LED strip", Quantity: 2, ReorderAt: 5},
			{Name: "Screws M3", Quantity: 90, ReorderAt: 20},
		},
	}
	models := []entities.ProductStock{
		{Product: "Lamp", Variant: "Blue", Count: 0},
		{Product: "Vase", Count: 2},
		{Product: "Planter", Count: 9},
	}

	items := engine.LowStock(nil, parts, models, nil, testNow)
	if len(items) != 3 {
		t.Fatalf("Expected three items, got %d: %+v", len(items), items)
	}

	// Sorted by urgency: out-of-stock model first, then low model,
	// then the watch-level supply.
	if items[0].Name != "Lamp (Blue)" || items[0].Urgency != entities.UrgencyCritical {
		t.Errorf("Expected critical Lamp (Blue) first, got %+v", items[0])
	}
	if items[1].Name != "Vase" || items[1].Urgency != entities.UrgencyLow {
		t.Errorf("Expected low Vase second, got %+v", items[1])
	}
	if items[2].Name != "LED strip" || items[2].Urgency != entities.UrgencyWatch {
		t.Errorf("Expected watch LED strip third, got %+v", items[2])
	}
}

func TestSortItems(t *testing.T) {
	three, nine := 3, 9
	items := []entities.LowStockItem{
		{Name: "watch", Urgency: entities.UrgencyWatch},
		{Name: "critical-slow", Urgency: entities.UrgencyCritical, DaysLeft: &nine},
		{Name: "low", Urgency: entities.UrgencyLow},
		{Name: "critical-fast", Urgency: entities.UrgencyCritical, DaysLeft: &three},
		{Name: "critical-unknown", Urgency: entities.UrgencyCritical},
	}

	sortItems(items)

	expected := []string{"critical-fast", "critical-slow", "critical-unknown", "low", "watch"}
	for i, name := range expected {
		if items[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, items[i].Name)
		}
	}
}
