package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mmdatafocus/pizza_sales/config"
	"github.com/mmdatafocus/pizza_sales/models"
	"github.com/mmdatafocus/pizza_sales/models/reports"
	"github.com/mmdatafocus/pizza_sales/utils"
)

type options struct {
	file       string
	start      string
	end        string
	names      string
	sizes      string
	categories string
	exportCsv  string
	exportXlsx string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pizza-report", flag.ContinueOnError)
	fs.StringVar(&opts.file, "file", "", "Optional: dataset (csv, txt, xlsx; local path or gs://bucket/object). Defaults to DEFAULT_DATASET.")
	fs.StringVar(&opts.start, "start", "", "Optional: start date (YYYY-MM-DD). Defaults to the earliest order.")
	fs.StringVar(&opts.end, "end", "", "Optional: end date (YYYY-MM-DD). Defaults to the latest order.")
	fs.StringVar(&opts.names, "name", "", "Optional: comma-separated pizza names")
	fs.StringVar(&opts.sizes, "size", "", "Optional: comma-separated sizes")
	fs.StringVar(&opts.categories, "category", "", "Optional: comma-separated categories")
	fs.StringVar(&opts.exportCsv, "export", "", "Optional: write the date-filtered orders as CSV to this path")
	fs.StringVar(&opts.exportXlsx, "xlsx", "", "Optional: write the date-filtered orders as XLSX to this path")
	err := fs.Parse(args)
	return opts, err
}

func parseDateFlag(name, value string) (*models.OrderDate, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(models.OrderDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}
	d := models.NewOrderDate(t.Year(), t.Month(), t.Day())
	return &d, nil
}

func (o options) filter() (reports.DashboardFilter, error) {
	start, err := parseDateFlag("start", o.start)
	if err != nil {
		return reports.DashboardFilter{}, err
	}
	end, err := parseDateFlag("end", o.end)
	if err != nil {
		return reports.DashboardFilter{}, err
	}
	return reports.DashboardFilter{
		DateRange: models.DateRange{Start: start, End: end},
		Attributes: models.AttributeFilter{
			Names:      utils.SplitAndTrim(o.names),
			Sizes:      utils.SplitAndTrim(o.sizes),
			Categories: utils.SplitAndTrim(o.categories),
		},
	}, nil
}

func writeExport(path string, store *models.RowStore, orders []models.Order, export func(io.Writer, *models.RowStore, []models.Order) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export(f, store, orders); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	filter, err := opts.filter()
	if err != nil {
		return err
	}

	location := strings.TrimSpace(opts.file)
	if location == "" {
		location = config.DefaultDataset()
	}
	store, _, err := models.LoadRowStore(ctx, location)
	if err != nil {
		if !models.IsSchemaError(err) {
			return err
		}
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	dashboard, err := reports.RunDashboard(ctx, store, filter)
	if err != nil {
		return err
	}

	if opts.exportCsv != "" || opts.exportXlsx != "" {
		dated := reports.DateFilteredOrders(ctx, store, filter.DateRange)
		if opts.exportCsv != "" {
			if err := writeExport(opts.exportCsv, store, dated, reports.ExportCsv); err != nil {
				return fmt.Errorf("export csv: %w", err)
			}
		}
		if opts.exportXlsx != "" {
			if err := writeExport(opts.exportXlsx, store, dated, reports.ExportExcel); err != nil {
				return fmt.Errorf("export xlsx: %w", err)
			}
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dashboard)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
