package memory

import (
	"context"
	"testing"
	"time"

	"github.com/vailmont/printops/pkg/domain/entities"
)

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	err := repo.LoadActiveOrders(ctx, []entities.Order{
		{ID: "o1", Status: entities.StatusShipped, ItemName: "Lamp"},
		{ID: "o2", Status: entities.StatusReceived, ItemName: "Vase"},
	})
	if err != nil {
		t.Fatalf("LoadActiveOrders failed: %v", err)
	}
	if err := repo.LoadArchivedOrders(ctx, []entities.Order{{ID: "o3", ItemName: "Lamp"}}); err != nil {
		t.Fatalf("LoadArchivedOrders failed: %v", err)
	}

	active, err := repo.ActiveOrders(ctx)
	if err != nil {
		t.Fatalf("ActiveOrders failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("Expected 2 active orders, got %d", len(active))
	}

	archived, err := repo.ArchivedOrders(ctx)
	if err != nil {
		t.Fatalf("ArchivedOrders failed: %v", err)
	}
	if len(archived) != 1 || archived[0].ID != "o3" {
		t.Errorf("Expected archived order o3, got %+v", archived)
	}

	// Mutating the returned slice must not affect the repository.
	active[0].ItemName = "mutated"
	again, _ := repo.ActiveOrders(ctx)
	if again[0].ItemName != "Lamp" {
		t.Error("Expected repository contents to be isolated from caller mutation")
	}
}

func TestCatalogRepository_FindProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()
	repo.AddProduct(entities.Product{Name: "Lamp", Aliases: []string{"Moon Lamp"}})
	repo.AddProduct(entities.Product{Name: "Lamp Deluxe"})

	// Exact beats substring even when another product would match.
	found, err := repo.FindProduct(ctx, "Lamp")
	if err != nil {
		t.Fatalf("FindProduct failed: %v", err)
	}
	if found == nil || found.Name != "Lamp" {
		t.Errorf("Expected exact match Lamp, got %+v", found)
	}

	found, _ = repo.FindProduct(ctx, "Moon Lamp")
	if found == nil || found.Name != "Lamp" {
		t.Errorf("Expected alias match Lamp, got %+v", found)
	}

	found, _ = repo.FindProduct(ctx, "Deluxe")
	if found == nil || found.Name != "Lamp Deluxe" {
		t.Errorf("Expected substring match Lamp Deluxe, got %+v", found)
	}

	found, _ = repo.FindProduct(ctx, "Rocket")
	if found != nil {
		t.Errorf("Expected no match, got %+v", found)
	}
}

func TestStockRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStockRepository()

	if err := repo.LoadFilaments(ctx, "alex", []entities.FilamentStock{{Color: "Black", AmountGrams: 500}}); err != nil {
		t.Fatalf("LoadFilaments failed: %v", err)
	}
	if err := repo.LoadParts(ctx, "alex", []entities.PartStock{{Name: "LED strip", Quantity: 10}}); err != nil {
		t.Fatalf("LoadParts failed: %v", err)
	}
	if err := repo.LoadProductStock(ctx, []entities.ProductStock{{Product: "Lamp", Count: 2}}); err != nil {
		t.Fatalf("LoadProductStock failed: %v", err)
	}

	filaments, err := repo.FilamentsByOwner(ctx)
	if err != nil {
		t.Fatalf("FilamentsByOwner failed: %v", err)
	}
	if len(filaments["alex"]) != 1 || filaments["alex"][0].Color != "Black" {
		t.Errorf("Unexpected filament stock: %+v", filaments)
	}

	parts, _ := repo.PartsByOwner(ctx)
	if len(parts["alex"]) != 1 {
		t.Errorf("Unexpected part stock: %+v", parts)
	}

	products, _ := repo.ProductStock(ctx)
	if len(products) != 1 || products[0].Product != "Lamp" {
		t.Errorf("Unexpected product stock: %+v", products)
	}
}

func TestUsageRepository_UsageSince(t *testing.T) {
	ctx := context.Background()
	repo := NewUsageRepository()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	err := repo.LoadUsage(ctx, []entities.UsageRecord{
		{Color: "Black", Grams: 100, At: base.Add(48 * time.Hour)},
		{Color: "Black", Grams: 50, At: base},
		{Color: "Red", Grams: 25, At: base.Add(-24 * time.Hour)},
	})
	if err != nil {
		t.Fatalf("LoadUsage failed: %v", err)
	}

	records, err := repo.UsageSince(ctx, base)
	if err != nil {
		t.Fatalf("UsageSince failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records since base, got %d", len(records))
	}
	if !records[0].At.Before(records[1].At) {
		t.Error("Expected records ordered oldest first")
	}
}
