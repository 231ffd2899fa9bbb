package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/fd1az/asset-console/business/assets/app"
	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/apperror"
	"github.com/fd1az/asset-console/internal/logger"
)

type testSource struct{}

func (testSource) IDs() []*big.Int  { return []*big.Int{big.NewInt(1)} }
func (testSource) NextID() *big.Int { return big.NewInt(2) }

type testReporter struct {
	got *domain.Info
}

func (r *testReporter) Report(_ context.Context, info *domain.Info) error {
	r.got = info
	return nil
}

func parseFields(t *testing.T, args ...string) *fieldFlags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := registerFieldFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func newService(rep app.Reporter) *app.CreationService {
	log := logger.New(io.Discard, logger.LevelError, "test", nil)
	return app.NewCreationService(testSource{}, rep, log, app.ServiceConfig{})
}

func TestRunCLI_Valid(t *testing.T) {
	rep := &testReporter{}
	svc := newService(rep)
	fields := parseFields(t,
		"-account", "alice",
		"-name", "Tether",
		"-symbol", "usdt",
		"-decimals", "6",
		"-min-balance", "0.7",
	)

	if err := runCLI(context.Background(), svc, fields, logger.New(io.Discard, logger.LevelError, "test", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.got == nil {
		t.Fatal("expected a reported record")
	}
	if rep.got.MinBalance().Int64() != 700_000 {
		t.Errorf("expected 700000 raw units, got %s", rep.got.MinBalance())
	}
	if rep.got.AssetID().Int64() != 2 {
		t.Errorf("expected suggested id 2, got %s", rep.got.AssetID())
	}
}

func TestRunCLI_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code apperror.Code
	}{
		{"taken id", []string{"-account", "a", "-name", "Tether", "-symbol", "usdt", "-decimals", "6", "-min-balance", "1", "-id", "1"}, apperror.CodeFormIncomplete},
		{"missing account", []string{"-name", "Tether", "-symbol", "usdt", "-decimals", "6", "-min-balance", "1"}, apperror.CodeFormIncomplete},
		{"bad decimals", []string{"-decimals", "six"}, apperror.CodeInvalidNumber},
		{"negative id", []string{"-id", "-5"}, apperror.CodeInvalidNumber},
		{"too precise", []string{"-decimals", "2", "-symbol", "abc", "-min-balance", "0.001"}, apperror.CodeTooManyDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &testReporter{}
			err := runCLI(context.Background(), newService(rep), parseFields(t, tt.args...),
				logger.New(io.Discard, logger.LevelError, "test", nil))

			if apperror.GetCode(err) != tt.code {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
			if apperror.ExitCodeOf(err) != apperror.ExitInvalid {
				t.Errorf("expected invalid exit code, got %d", apperror.ExitCodeOf(err))
			}
			if rep.got != nil {
				t.Error("expected nothing reported")
			}
		})
	}
}

func TestPrintValidity(t *testing.T) {
	svc := newService(&testReporter{})
	svc.Form().SetAssetName("ab")

	var buf bytes.Buffer
	printValidity(&buf, svc.Form())
	out := buf.String()

	for _, want := range []string{"creator account  missing", "asset name       invalid", "asset id         ok", "in NONE, 0 decimals"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
