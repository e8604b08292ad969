package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severity classifies a validation alert
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// CheckID identifies the consistency check that produced an alert
type CheckID string

const (
	CheckMultiItem       CheckID = "multi_item"
	CheckCrossValidation CheckID = "cross_validation"
	CheckAnomaly         CheckID = "anomaly"
	CheckArchiveStatus   CheckID = "archive_status"
	CheckPriceFormat     CheckID = "price_format"
	CheckCatalogMatch    CheckID = "catalog_match"
)

// Alert represents one finding of the data integrity validator
type Alert struct {
	Severity Severity        `json:"severity"`
	Check    CheckID         `json:"check"`
	OrderID  OrderID         `json:"orderId,omitempty"`
	Message  string          `json:"message"`
	Impact   decimal.Decimal `json:"impact"`
}

// ReportStatus is the overall outcome of a validation run
type ReportStatus string

const (
	ReportValid   ReportStatus = "valid"
	ReportWarning ReportStatus = "warning"
	ReportError   ReportStatus = "error"
)

// ValidationReport contains the complete output of a validation run.
// The corrected aggregate totals are computed during cross-validation
// and returned so callers can reuse them without recomputation.
type ValidationReport struct {
	Status           ReportStatus               `json:"status"`
	Alerts           []Alert                    `json:"alerts"`
	ErrorCount       int                        `json:"errorCount"`
	WarningCount     int                        `json:"warningCount"`
	TotalRevenue     decimal.Decimal            `json:"totalRevenue"`
	OrderCount       int                        `json:"orderCount"`
	RevenueByProduct map[string]decimal.Decimal `json:"revenueByProduct"`
	Discrepancy      decimal.Decimal            `json:"discrepancy"`
	Elapsed          time.Duration              `json:"elapsedNs"`
}
