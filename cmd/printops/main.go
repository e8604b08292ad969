package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vailmont/printops/pkg/interfaces/cli/commands"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	var err error

	switch os.Args[1] {
	case "validate":
		err = runValidate(ctx, os.Args[2:])
	case "lowstock":
		err = runLowStock(ctx, os.Args[2:])
	case "bom":
		err = runBOM(ctx, os.Args[2:])
	case "availability":
		err = runAvailability(ctx, os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runValidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var (
		snapshotFile = fs.String("snapshot", "", "Path to combined snapshot JSON file")
		ordersFile   = fs.String("orders", "", "Path to active orders JSON file")
		archivedFile = fs.String("archived", "", "Path to archived orders JSON file")
		format       = fs.String("format", "text", "Output format: text, json")
		verbose      = fs.Bool("verbose", false, "Enable verbose output")
	)
	fs.Parse(args)

	cmd := commands.NewValidateCommand(commands.ValidateConfig{
		SnapshotFile: *snapshotFile,
		OrdersFile:   *ordersFile,
		ArchivedFile: *archivedFile,
		Format:       *format,
		Verbose:      *verbose,
	})
	return cmd.Execute(ctx)
}

func runLowStock(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lowstock", flag.ExitOnError)
	var (
		snapshotFile = fs.String("snapshot", "", "Path to combined snapshot JSON file")
		windowDays   = fs.Int("window", 30, "Consumption window in days")
		format       = fs.String("format", "text", "Output format: text, json")
		verbose      = fs.Bool("verbose", false, "Enable verbose output")
	)
	fs.Parse(args)

	cmd := commands.NewLowStockCommand(commands.LowStockConfig{
		SnapshotFile: *snapshotFile,
		WindowDays:   *windowDays,
		Format:       *format,
		Verbose:      *verbose,
	})
	return cmd.Execute(ctx)
}

func runBOM(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bom", flag.ExitOnError)
	var (
		snapshotFile = fs.String("snapshot", "", "Path to combined snapshot JSON file")
		product      = fs.String("product", "", "Catalog product name")
		printerID    = fs.String("printer", "", "Printer id for BOM selection")
		minutes      = fs.Float64("minutes", 0, "Manual print duration override (minutes)")
		costPerGram  = fs.Float64("cost-per-gram", 0, "Filament cost per gram")
		margin       = fs.Float64("margin", 0, "Target margin rate (0-1)")
		feeRate      = fs.Float64("fee", 0, "Marketplace fee rate (0-1)")
		flatFee      = fs.Float64("flat-fee", 0, "Flat per-transaction fee")
		format       = fs.String("format", "text", "Output format: text, json")
	)
	fs.Parse(args)

	cmd := commands.NewBOMCommand(commands.BOMConfig{
		SnapshotFile: *snapshotFile,
		Product:      *product,
		PrinterID:    *printerID,
		Minutes:      *minutes,
		CostPerGram:  *costPerGram,
		Margin:       *margin,
		FeeRate:      *feeRate,
		FlatFee:      *flatFee,
		Format:       *format,
	})
	return cmd.Execute(ctx)
}

func runAvailability(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("availability", flag.ExitOnError)
	var (
		snapshotFile = fs.String("snapshot", "", "Path to combined snapshot JSON file")
		orderID      = fs.String("order", "", "Order id to check")
		format       = fs.String("format", "text", "Output format: text, json")
	)
	fs.Parse(args)

	cmd := commands.NewAvailabilityCommand(commands.AvailabilityConfig{
		SnapshotFile: *snapshotFile,
		OrderID:      *orderID,
		Format:       *format,
	})
	return cmd.Execute(ctx)
}

func usage() {
	fmt.Fprintf(os.Stderr, `printops: print-shop operations engine

Usage:
  printops validate     -snapshot FILE | -orders FILE [-archived FILE]
  printops lowstock     -snapshot FILE [-window DAYS]
  printops bom          -snapshot FILE -product NAME [-printer ID]
  printops availability -snapshot FILE -order ID

Common flags:
  -format text|json   Output format (default text)
  -verbose            Verbose loading output
`)
}
