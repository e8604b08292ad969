package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vailmont/printops/pkg/application/services/forecast"
	"github.com/vailmont/printops/pkg/application/services/materials"
	"github.com/vailmont/printops/pkg/application/services/validation"
	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/interfaces/cli/output"
)

// Demonstrates the engines end to end on a small in-memory shop:
// validate a ledger, forecast filament stock, and cost out a product.
func main() {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	shipped := now.Add(-48 * time.Hour)

	catalog := []entities.Product{
		{
			Name:         "Desk Lamp",
			Aliases:      []string{"Lamp"},
			DefaultColor: "Galaxy Black",
			Printers: []entities.PrinterSettings{
				{
					PrinterID: "p1",
					Plates: []entities.Plate{
						{Name: "base", PrintMinutes: 90, Parts: []entities.PlatePart{
							{Name: "body", FilamentGrams: 80, Quantity: 1},
							{Name: "shade", FilamentGrams: 35, Quantity: 1},
						}},
					},
				},
			},
			ExternalParts: []entities.ExternalPart{
				{Name: "LED strip", Quantity: 1, UnitCost: decimal.NewFromFloat(3.50)},
			},
		},
		{Name: "Phone Stand", FilamentGrams: 45, PrintMinutes: 60, DefaultColor: "Matte Red"},
	}

	active := []entities.Order{
		{ID: "ord-1", Status: entities.StatusShipped, RawPrice: "$34.99", Quantity: 1,
			ItemName: "Desk Lamp|Galaxy Black", Color: "Galaxy Black", ShippedAt: &shipped},
		{ID: "ord-2", Status: entities.StatusReceived, RawPrice: "$12.50", Quantity: 2,
			ItemName: "Phone Stand", Color: "Matte Red"},
	}
	archived := []entities.Order{
		{ID: "ord-0", Status: entities.StatusShipped, RawPrice: "$34.99.99", Quantity: 1,
			ItemName: "Desk Lamp", ArchivedAt: &shipped},
	}

	validator := validation.NewValidator(validation.DefaultConfig())
	report := validator.Validate(context.Background(), active, archived, catalog)
	if err := output.RenderReport(os.Stdout, report, "text"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	filaments := map[string][]entities.FilamentStock{
		"workshop": {
			{Color: "Galaxy Black PLA", AmountGrams: 180, ReorderAt: 250},
			{Color: "Matte Red PLA", AmountGrams: 900, ReorderAt: 250, BackupRolls: 1},
		},
	}
	history := []entities.UsageRecord{
		{Color: "Galaxy Black", Grams: 300, At: now.Add(-10 * 24 * time.Hour)},
		{Color: "Galaxy Black", Grams: 150, At: now.Add(-3 * 24 * time.Hour)},
	}

	engine := forecast.NewEngine(forecast.DefaultWindow)
	items := engine.LowStock(filaments, nil, nil, history, now)
	fmt.Println()
	if err := output.RenderLowStock(os.Stdout, items, "text"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	breakdown := materials.ComputeBOM(catalog[0], materials.DefaultCostingOptions())
	fmt.Println()
	if err := output.RenderBreakdown(os.Stdout, catalog[0].Name, breakdown, "text"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result := materials.CheckAvailability(active[0], &catalog[0], filaments)
	fmt.Println()
	if err := output.RenderAvailability(os.Stdout, string(active[0].ID), result, "text"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
