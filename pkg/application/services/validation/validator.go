package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/services"
)

// Config holds the validator thresholds. The zero value is not
// usable; call DefaultConfig.
type Config struct {
	// AnomalyCeiling is the price above which an order is considered
	// an entry error rather than a real sale.
	AnomalyCeiling decimal.Decimal
	// Tolerance is the maximum acceptable absolute difference between
	// the grand revenue total and the sum of per-product totals.
	Tolerance decimal.Decimal
	// MaxTaxRatio is the sales-tax fraction of price above which tax
	// looks misrecorded.
	MaxTaxRatio decimal.Decimal
}

// DefaultConfig returns the standard validator thresholds
func DefaultConfig() Config {
	return Config{
		AnomalyCeiling: decimal.NewFromInt(100000),
		Tolerance:      decimal.NewFromFloat(0.01),
		MaxTaxRatio:    decimal.NewFromFloat(0.20),
	}
}

// Validator runs the consistency checks over the order ledger. It is
// stateless and safe for concurrent use; every call operates only on
// the snapshots it is given.
type Validator struct {
	config Config
}

// NewValidator creates a validator with the given thresholds
func NewValidator(config Config) *Validator {
	return &Validator{config: config}
}

// Validate runs all consistency checks across the active and archived
// order collections and produces a severity-classified report. The
// catalog is optional; when nil the catalog match check is skipped.
//
// Validate never fails: malformed input degrades to alerts, not
// errors. The report is a pure function of the inputs.
func (v *Validator) Validate(ctx context.Context, active, archived []entities.Order, catalog []entities.Product) *entities.ValidationReport {
	start := time.Now()

	shipped := shippedOrders(active, archived)

	report := &entities.ValidationReport{
		Status:           entities.ReportValid,
		Alerts:           []entities.Alert{},
		OrderCount:       len(shipped),
		RevenueByProduct: map[string]decimal.Decimal{},
	}

	v.checkMultiItem(shipped, report)
	v.checkCrossValidation(shipped, report)
	v.checkAnomalies(shipped, report)
	v.checkArchiveStatus(archived, report)
	v.checkPriceFormat(shipped, report)
	if catalog != nil {
		v.checkCatalogMatch(shipped, catalog, report)
	}

	for _, alert := range report.Alerts {
		switch alert.Severity {
		case entities.SeverityError:
			report.ErrorCount++
		case entities.SeverityWarning:
			report.WarningCount++
		}
	}
	switch {
	case report.ErrorCount > 0:
		report.Status = entities.ReportError
	case report.WarningCount > 0:
		report.Status = entities.ReportWarning
	}

	report.Elapsed = time.Since(start)
	return report
}

// shippedOrders selects the financially relevant ledger: shipped
// active orders plus archived orders. Archived records without a
// status are assumed shipped; records that explicitly carry another
// status are excluded here and flagged by the archive-status check.
func shippedOrders(active, archived []entities.Order) []entities.Order {
	var shipped []entities.Order
	for _, order := range active {
		if order.Status == entities.StatusShipped {
			shipped = append(shipped, order)
		}
	}
	for _, order := range archived {
		if order.Status == "" || order.Status == entities.StatusShipped {
			shipped = append(shipped, order)
		}
	}
	return shipped
}

// checkMultiItem flags orders carrying more than one line item: their
// price covers multiple products and cannot be summed per-product
// without splitting.
func (v *Validator) checkMultiItem(orders []entities.Order, report *entities.ValidationReport) {
	for _, order := range orders {
		if len(order.LineItems) > 1 {
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityWarning,
				Check:    entities.CheckMultiItem,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("order has %d line items; per-product revenue attribution requires splitting", len(order.LineItems)),
				Impact:   services.NormalizePrice(order.RawPrice),
			})
		}
	}
}

// checkCrossValidation computes total revenue and per-product revenue
// independently and compares them. This is the primary correctness
// invariant: the two sums are produced by separate passes so a bug in
// either aggregation surfaces as a discrepancy. The corrected totals
// are stored on the report for reuse by callers.
func (v *Validator) checkCrossValidation(orders []entities.Order, report *entities.ValidationReport) {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(v.revenueContribution(order))
	}

	byProduct := map[string]decimal.Decimal{}
	for _, order := range orders {
		contribution := v.revenueContribution(order)
		if contribution.IsZero() {
			continue
		}
		name := order.BaseItemName()
		if name == "" {
			name = order.ItemName
		}
		byProduct[name] = byProduct[name].Add(contribution)
	}

	productSum := decimal.Zero
	for _, revenue := range byProduct {
		productSum = productSum.Add(revenue)
	}

	discrepancy := total.Sub(productSum).Abs()
	report.TotalRevenue = total
	report.RevenueByProduct = byProduct
	report.Discrepancy = discrepancy

	if discrepancy.GreaterThan(v.config.Tolerance) {
		report.Alerts = append(report.Alerts, entities.Alert{
			Severity: entities.SeverityError,
			Check:    entities.CheckCrossValidation,
			Message: fmt.Sprintf("grand total %s differs from per-product sum %s by %s",
				total.StringFixed(2), productSum.StringFixed(2), discrepancy.StringFixed(2)),
			Impact: discrepancy,
		})
	}
}

// revenueContribution returns the normalized price of an order when
// it is in range, zero otherwise. Negative and above-ceiling prices
// are excluded from totals; the anomaly check flags them separately.
func (v *Validator) revenueContribution(order entities.Order) decimal.Decimal {
	price := services.NormalizePrice(order.RawPrice)
	if price.IsNegative() || price.GreaterThan(v.config.AnomalyCeiling) {
		return decimal.Zero
	}
	return price
}

// checkAnomalies flags per-order values that are technically valid
// but almost certainly wrong.
func (v *Validator) checkAnomalies(orders []entities.Order, report *entities.ValidationReport) {
	for _, order := range orders {
		price := services.NormalizePrice(order.RawPrice)

		switch {
		case price.IsZero():
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityWarning,
				Check:    entities.CheckAnomaly,
				OrderID:  order.ID,
				Message:  "order price is zero",
			})
		case price.GreaterThan(v.config.AnomalyCeiling):
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityError,
				Check:    entities.CheckAnomaly,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("order price %s exceeds anomaly ceiling %s", price.StringFixed(2), v.config.AnomalyCeiling.StringFixed(2)),
				Impact:   price,
			})
		case price.IsNegative():
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityError,
				Check:    entities.CheckAnomaly,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("order price %s is negative", price.StringFixed(2)),
				Impact:   price.Abs(),
			})
		}

		if order.Quantity <= 0 {
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityWarning,
				Check:    entities.CheckAnomaly,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("order quantity %d is not positive", order.Quantity),
			})
		}

		if price.IsPositive() && order.SalesTax.GreaterThan(price.Mul(v.config.MaxTaxRatio)) {
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityWarning,
				Check:    entities.CheckAnomaly,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("recorded sales tax %s exceeds 20%% of price %s", order.SalesTax.StringFixed(2), price.StringFixed(2)),
				Impact:   order.SalesTax,
			})
		}
	}
}

// checkArchiveStatus enforces the archival contract: archived records
// are shipped records. A present status other than shipped means the
// record was archived prematurely or mis-migrated.
func (v *Validator) checkArchiveStatus(archived []entities.Order, report *entities.ValidationReport) {
	for _, order := range archived {
		if order.Status != "" && order.Status != entities.StatusShipped {
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityWarning,
				Check:    entities.CheckArchiveStatus,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("archived order has status %q, expected shipped", order.Status),
				Impact:   services.NormalizePrice(order.RawPrice),
			})
		}
	}
}

// checkPriceFormat re-inspects the raw price strings that the
// normalizer may have silently zeroed.
func (v *Validator) checkPriceFormat(orders []entities.Order, report *entities.ValidationReport) {
	for _, order := range orders {
		switch services.ClassifyPrice(order.RawPrice) {
		case services.PriceMalformed:
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityError,
				Check:    entities.CheckPriceFormat,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("price %q has more than one decimal point", order.RawPrice),
			})
		case services.PriceSuspect:
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityWarning,
				Check:    entities.CheckPriceFormat,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("price %q contains unexpected characters", order.RawPrice),
			})
		}
	}
}

// checkCatalogMatch reports orders whose item name does not resolve
// to any catalog product. Bundles (" + " joined names) are skipped
// because they legitimately reference several products. A miss is
// catalog drift, not necessarily an error, so severity is info.
func (v *Validator) checkCatalogMatch(orders []entities.Order, catalog []entities.Product, report *entities.ValidationReport) {
	for _, order := range orders {
		if order.IsBundle() {
			continue
		}
		base := order.BaseItemName()
		if base == "" {
			continue
		}

		matched := false
		for _, product := range catalog {
			if services.MatchName(base, product.Name, product.Aliases) != services.MatchNone {
				matched = true
				break
			}
		}
		if !matched {
			report.Alerts = append(report.Alerts, entities.Alert{
				Severity: entities.SeverityInfo,
				Check:    entities.CheckCatalogMatch,
				OrderID:  order.ID,
				Message:  fmt.Sprintf("item %q does not match any catalog product", base),
			})
		}
	}
}
