package entities

import "testing"

func TestNewProduct_Validation(t *testing.T) {
	valid, err := NewProduct("Lamp", nil, []ExternalPart{{Name: "LED strip", Quantity: 1}})
	if err != nil {
		t.Fatalf("Expected valid product creation to succeed: %v", err)
	}
	if valid.Name != "Lamp" {
		t.Errorf("Expected name Lamp, got %s", valid.Name)
	}

	if _, err := NewProduct("", nil, nil); err == nil {
		t.Error("Expected error for empty product name")
	}

	if _, err := NewProduct("Lamp", nil, []ExternalPart{{Name: "", Quantity: 1}}); err == nil {
		t.Error("Expected error for empty external part name")
	}

	if _, err := NewProduct("Lamp", nil, []ExternalPart{{Name: "LED strip", Quantity: 0}}); err == nil {
		t.Error("Expected error for non-positive external part quantity")
	}
}

func TestProduct_SettingsFor(t *testing.T) {
	product := Product{
		Name: "Lamp",
		Printers: []PrinterSettings{
			{PrinterID: "a1", PrintMinutes: 90},
			{PrinterID: "x1", PrintMinutes: 60},
		},
	}

	if ps := product.SettingsFor("x1"); ps == nil || ps.PrinterID != "x1" {
		t.Errorf("Expected settings for x1, got %+v", ps)
	}

	// Unknown printer falls back to the first setting set
	if ps := product.SettingsFor("unknown"); ps == nil || ps.PrinterID != "a1" {
		t.Errorf("Expected fallback to first settings, got %+v", ps)
	}

	empty := Product{Name: "Vase"}
	if ps := empty.SettingsFor("a1"); ps != nil {
		t.Errorf("Expected nil settings for product without printers, got %+v", ps)
	}
}
