package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fd1az/asset-console/business/assets/app"
	"github.com/fd1az/asset-console/internal/apperror"
	"github.com/fd1az/asset-console/internal/asset"
	"github.com/fd1az/asset-console/internal/logger"
)

// decimalsBitLength bounds -decimals to the on-chain u8.
const decimalsBitLength = 8

// fieldFlags holds the CLI-mode form input. Unset flags keep the form seeds.
type fieldFlags struct {
	fs *flag.FlagSet

	account    string
	id         string
	name       string
	symbol     string
	decimals   string
	minBalance string
}

func registerFieldFlags(fs *flag.FlagSet) *fieldFlags {
	f := &fieldFlags{fs: fs}
	fs.StringVar(&f.account, "account", "", "Creator account (CLI mode)")
	fs.StringVar(&f.id, "id", "", "Asset id, defaults to the next free id (CLI mode)")
	fs.StringVar(&f.name, "name", "", "Asset name, 3 to 32 characters (CLI mode)")
	fs.StringVar(&f.symbol, "symbol", "", "Asset symbol, 3 to 7 characters (CLI mode)")
	fs.StringVar(&f.decimals, "decimals", "", "Asset decimals, at most 20 (CLI mode)")
	fs.StringVar(&f.minBalance, "min-balance", "", "Minimum balance in display units, e.g. 0.01 (CLI mode)")
	return f
}

// set reports whether the named flag was given on the command line.
func (f *fieldFlags) set(name string) bool {
	found := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// apply drives the form through its widget callbacks, in the order a user
// would fill it. The minimum balance is read last, in the resulting unit.
func (f *fieldFlags) apply(form *app.Form) error {
	if f.set("account") {
		form.SetAccountID(f.account)
	}
	if f.set("name") {
		form.SetAssetName(f.name)
	}
	if f.set("symbol") {
		form.SetAssetSymbol(f.symbol)
	}
	if f.set("decimals") {
		v, err := asset.ParseID(f.decimals, decimalsBitLength)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidNumber, "-decimals")
		}
		form.SetAssetDecimals(v)
	}
	if f.set("min-balance") {
		v, err := asset.ParseUnits(f.minBalance, form.Evaluation().Display.Decimals)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidAmount, "-min-balance")
		}
		form.SetMinBalance(v)
	}
	if f.set("id") {
		v, err := asset.ParseID(f.id, asset.IDBitLength)
		if err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidAssetID, "-id")
		}
		form.SetAssetID(v)
	}
	return nil
}

func runCLI(ctx context.Context, svc *app.CreationService, fields *fieldFlags, log logger.LoggerInterface) error {
	if err := fields.apply(svc.Form()); err != nil {
		return err
	}

	if err := svc.Submit(ctx); err != nil {
		if apperror.GetCode(err) == apperror.CodeFormIncomplete {
			printValidity(os.Stderr, svc.Form())
		}
		return err
	}

	log.Info(ctx, "done")
	return nil
}

// printValidity lists every field with its current state.
func printValidity(w io.Writer, form *app.Form) {
	state := form.State()
	eval := form.Evaluation()

	mark := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "invalid"
	}
	present := func(ok bool) string {
		if ok {
			return "ok"
		}
		return "missing"
	}

	balanceOK := state.MinBalance != nil && state.MinBalance.Sign() != 0

	fmt.Fprintln(w, "asset form is incomplete:")
	fmt.Fprintf(w, "  %-16s %s\n", "creator account", present(state.AccountID != ""))
	fmt.Fprintf(w, "  %-16s %s\n", "asset name", mark(eval.ValidName))
	fmt.Fprintf(w, "  %-16s %s\n", "asset symbol", mark(eval.ValidSymbol))
	fmt.Fprintf(w, "  %-16s %s\n", "asset decimals", mark(eval.ValidDecimals))
	fmt.Fprintf(w, "  %-16s %s (in %s, %d decimals)\n", "minimum balance",
		mark(balanceOK), eval.Display.Symbol, eval.Display.Decimals)
	fmt.Fprintf(w, "  %-16s %s\n", "asset id", mark(eval.ValidID))
}
