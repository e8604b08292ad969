// Package output renders engine results as text or JSON for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/vailmont/printops/pkg/application/services/materials"
	"github.com/vailmont/printops/pkg/domain/entities"
)

const separator = "────────────────────────────────────────────────────────────────\n"

// RenderReport writes a validation report in the requested format
func RenderReport(w io.Writer, report *entities.ValidationReport, format string) error {
	switch format {
	case "", "text":
		return renderReportText(w, report)
	case "json":
		return renderJSON(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderReportText(w io.Writer, report *entities.ValidationReport) error {
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "                 DATA INTEGRITY REPORT: %s\n", report.Status)
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════════\n\n")

	fmt.Fprintf(w, "📊 SUMMARY\n")
	fmt.Fprintf(w, "  Orders Checked: %d\n", report.OrderCount)
	fmt.Fprintf(w, "  Total Revenue:  $%s\n", report.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "  Discrepancy:    $%s\n", report.Discrepancy.StringFixed(2))
	fmt.Fprintf(w, "  Errors: %d  Warnings: %d  Alerts: %d\n", report.ErrorCount, report.WarningCount, len(report.Alerts))
	fmt.Fprintf(w, "  Computed In:    %v\n\n", report.Elapsed)

	if len(report.RevenueByProduct) > 0 {
		fmt.Fprintf(w, "💰 REVENUE BY PRODUCT\n")
		fmt.Fprint(w, separator)
		names := make([]string, 0, len(report.RevenueByProduct))
		for name := range report.RevenueByProduct {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-30s $%s\n", name, report.RevenueByProduct[name].StringFixed(2))
		}
		fmt.Fprintln(w)
	}

	if len(report.Alerts) > 0 {
		fmt.Fprintf(w, "🚨 ALERTS\n")
		fmt.Fprint(w, separator)
		for _, alert := range report.Alerts {
			fmt.Fprintf(w, "[%-7s] %-16s %s\n", alert.Severity, alert.Check, alert.Message)
			if alert.OrderID != "" {
				fmt.Fprintf(w, "          order: %s", alert.OrderID)
				if alert.Impact.IsPositive() {
					fmt.Fprintf(w, "  impact: $%s", alert.Impact.StringFixed(2))
				}
				fmt.Fprintln(w)
			}
		}
	}
	return nil
}

// RenderLowStock writes the low-stock report in the requested format
func RenderLowStock(w io.Writer, items []entities.LowStockItem, format string) error {
	switch format {
	case "", "text":
		return renderLowStockText(w, items)
	case "json":
		return renderJSON(w, items)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderLowStockText(w io.Writer, items []entities.LowStockItem) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "✅ No low-stock items")
		return nil
	}

	fmt.Fprintf(w, "📦 LOW STOCK (%d items)\n", len(items))
	fmt.Fprint(w, separator)
	for _, item := range items {
		fmt.Fprintf(w, "[%-8s] %-10s %-24s %g/%g", item.Urgency, item.Kind, item.Name, item.Current, item.Threshold)
		if item.Owner != "" {
			fmt.Fprintf(w, "  owner: %s", item.Owner)
		}
		if item.DaysLeft != nil {
			fmt.Fprintf(w, "  ~%dd left (%.1fg/day)", *item.DaysLeft, item.DailyUsage)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// RenderBreakdown writes a cost breakdown in the requested format
func RenderBreakdown(w io.Writer, product string, breakdown materials.CostBreakdown, format string) error {
	switch format {
	case "", "text":
		return renderBreakdownText(w, product, breakdown)
	case "json":
		return renderJSON(w, breakdown)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderBreakdownText(w io.Writer, product string, breakdown materials.CostBreakdown) error {
	fmt.Fprintf(w, "💵 COST BREAKDOWN: %s\n", product)
	fmt.Fprint(w, separator)
	for _, line := range breakdown.Lines {
		fmt.Fprintf(w, "  %-20s %8.1f × $%-8s $%s\n",
			line.Label, line.Quantity, line.UnitCost.String(), line.Total.StringFixed(2))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Materials:    $%s\n", breakdown.MaterialCost.StringFixed(2))
	fmt.Fprintf(w, "  Labor:        $%s\n", breakdown.LaborCost.StringFixed(2))
	fmt.Fprintf(w, "  Electricity:  $%s\n", breakdown.ElectricityCost.StringFixed(2))
	fmt.Fprintf(w, "  Total COGS:   $%s\n", breakdown.TotalCOGS.StringFixed(2))
	fmt.Fprintf(w, "  Suggested:    $%s\n", breakdown.SuggestedPrice.StringFixed(2))
	return nil
}

// RenderAvailability writes an availability result in the requested format
func RenderAvailability(w io.Writer, orderID string, result materials.AvailabilityResult, format string) error {
	switch format {
	case "", "text":
		return renderAvailabilityText(w, orderID, result)
	case "json":
		return renderJSON(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderAvailabilityText(w io.Writer, orderID string, result materials.AvailabilityResult) error {
	fmt.Fprintf(w, "🧵 MATERIAL AVAILABILITY: order %s: %s\n", orderID, result.Status)
	fmt.Fprint(w, separator)
	for _, detail := range result.Details {
		fmt.Fprintf(w, "[%-9s] %-10s %-20s need %g have %g",
			detail.Status, detail.Kind, detail.Material, detail.Needed, detail.Available)
		if !math.IsInf(detail.Ratio, 1) && detail.Status != materials.StatusUntracked {
			fmt.Fprintf(w, "  (%.1fx)", detail.Ratio)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
