package infra

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fd1az/asset-console/business/assets/app"
	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/asset"
)

// ConsoleReporter prints a human-readable summary of the record.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Report prints info.
func (r *ConsoleReporter) Report(_ context.Context, info *domain.Info) error {
	display := domain.DisplayFor(info.AssetDecimals(), info.AssetSymbol())

	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "NEW ASSET")
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintf(r.out, "Creator:        %s\n", info.AccountID())
	fmt.Fprintf(r.out, "Asset id:       %s\n", info.AssetID())
	fmt.Fprintf(r.out, "Name:           %s\n", info.AssetName())
	fmt.Fprintf(r.out, "Symbol:         %s\n", display.Symbol)
	fmt.Fprintf(r.out, "Decimals:       %d\n", display.Decimals)
	fmt.Fprintf(r.out, "Min balance:    %s (%s raw)\n",
		asset.FormatUnits(info.MinBalance(), display.Decimals, display.Symbol), info.MinBalance())
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	return nil
}

// MultiReporter reports to each reporter in order, stopping at the first error.
type MultiReporter []app.Reporter

// Report implements app.Reporter.
func (m MultiReporter) Report(ctx context.Context, info *domain.Info) error {
	for _, r := range m {
		if err := r.Report(ctx, info); err != nil {
			return err
		}
	}
	return nil
}
