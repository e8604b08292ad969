package snapshot

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp snapshot: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `{
		"orders": [
			{"id": "o1", "status": "shipped", "rawPrice": "$20.00", "quantity": 1, "itemName": "Lamp|Blue"}
		],
		"archivedOrders": [
			{"id": "o2", "status": "shipped", "rawPrice": "$15.00", "quantity": 1, "itemName": "Lamp|Red"}
		],
		"catalog": [
			{"name": "Lamp", "aliases": ["Moon Lamp"], "filamentGrams": 120}
		],
		"filaments": {
			"alex": [{"color": "Black", "amountGrams": 500, "backupRolls": 1}]
		},
		"usage": [
			{"color": "Black", "grams": 100, "at": "2025-06-01T00:00:00Z"}
		]
	}`)

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(snap.Orders) != 1 || snap.Orders[0].BaseItemName() != "Lamp" {
		t.Errorf("Unexpected orders: %+v", snap.Orders)
	}
	if len(snap.ArchivedOrders) != 1 {
		t.Errorf("Expected 1 archived order, got %d", len(snap.ArchivedOrders))
	}
	if len(snap.Catalog) != 1 || snap.Catalog[0].FilamentGrams != 120 {
		t.Errorf("Unexpected catalog: %+v", snap.Catalog)
	}
	if snap.Filaments["alex"][0].TotalGrams() != 1500 {
		t.Errorf("Unexpected filament stock: %+v", snap.Filaments)
	}
	if len(snap.Usage) != 1 || snap.Usage[0].Grams != 100 {
		t.Errorf("Unexpected usage: %+v", snap.Usage)
	}
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing order id", `{"orders": [{"status": "shipped"}]}`},
		{"missing product name", `{"catalog": [{"filamentGrams": 10}]}`},
		{"unknown field", `{"orderz": []}`},
		{"not json", `hello`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.content)
			if _, err := Load(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadOrders(t *testing.T) {
	path := writeFile(t, `[{"id": "o1", "status": "shipped", "rawPrice": "$20.00", "quantity": 1, "itemName": "Lamp"}]`)

	orders, err := LoadOrders(path)
	if err != nil {
		t.Fatalf("LoadOrders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Errorf("Unexpected orders: %+v", orders)
	}
}
