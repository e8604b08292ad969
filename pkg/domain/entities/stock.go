package entities

import "time"

// BackupRollGrams is the nominal weight of one unopened backup roll.
const BackupRollGrams = 1000.0

// FilamentStock represents the current filament inventory for one
// color owned by one member.
type FilamentStock struct {
	Color       string  `json:"color"`
	AmountGrams float64 `json:"amountGrams"`
	BackupRolls int     `json:"backupRolls"`
	ReorderAt   float64 `json:"reorderAt,omitempty"`
	SupplierURL string  `json:"supplierUrl,omitempty"`
}

// TotalGrams returns the effective stock on hand: the open amount
// plus one nominal roll per unopened backup.
func (f FilamentStock) TotalGrams() float64 {
	return f.AmountGrams + float64(f.BackupRolls)*BackupRollGrams
}

// PartStock represents inventory of a purchased external part.
type PartStock struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	ReorderAt int    `json:"reorderAt,omitempty"`
}

// ProductStock represents the finished-goods count for one product
// variant.
type ProductStock struct {
	Product string `json:"product"`
	Variant string `json:"variant,omitempty"`
	Count   int    `json:"count"`
}

// DisplayName returns the product name qualified by variant when one
// is set.
func (p ProductStock) DisplayName() string {
	if p.Variant == "" {
		return p.Product
	}
	return p.Product + " (" + p.Variant + ")"
}

// UsageRecord represents one append-only filament consumption log
// entry. The log is written by the persistence layer; the engines
// only read it.
type UsageRecord struct {
	Color string    `json:"color"`
	Grams float64   `json:"grams"`
	At    time.Time `json:"at"`
}
