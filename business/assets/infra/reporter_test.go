package infra

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fd1az/asset-console/business/assets/app"
	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/apperror"
)

func testInfo(t *testing.T) *domain.Info {
	t.Helper()
	e := domain.Evaluate(domain.FormState{
		AccountID:     "5Grw",
		AssetID:       big.NewInt(42),
		AssetDecimals: big.NewInt(6),
		AssetName:     "TestCoin",
		AssetSymbol:   "tst",
		MinBalance:    big.NewInt(1500000),
	}, domain.NewIDSet())
	if e.Info == nil {
		t.Fatal("expected a valid record")
	}
	return e.Info
}

const wantJSON = `{"accountId":"5Grw","assetDecimals":6,"assetId":42,"assetName":"TestCoin","assetSymbol":"tst","minBalance":1500000}` + "\n"

func TestJSONReporter_Writer(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(context.Background(), testInfo(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != wantJSON {
		t.Errorf("unexpected output:\n got %s\nwant %s", buf.String(), wantJSON)
	}
}

func TestJSONReporter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.json")
	r := NewFileReporter(path)

	// Reporting twice leaves only the latest record.
	for i := 0; i < 2; i++ {
		if err := r.Report(context.Background(), testInfo(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != wantJSON {
		t.Errorf("unexpected file contents:\n%s", raw)
	}
}

func TestJSONReporter_BadPath(t *testing.T) {
	r := NewFileReporter(filepath.Join(t.TempDir(), "missing", "asset.json"))
	err := r.Report(context.Background(), testInfo(t))
	if apperror.GetCode(err) != apperror.CodeOutputWriteFailed {
		t.Errorf("expected OUTPUT_WRITE_FAILED, got %v", err)
	}
}

type closeFailWriter struct {
	bytes.Buffer
	closeErr error
}

func (w *closeFailWriter) Close() error { return w.closeErr }

func TestJSONReporter_CloseError(t *testing.T) {
	tests := []struct {
		name     string
		closeErr error
		wantCode apperror.Code
	}{
		{"close ok", nil, ""},
		{"close fails", errors.New("no space left on device"), apperror.CodeOutputWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &closeFailWriter{closeErr: tt.closeErr}
			err := writeAndClose(w, testInfo(t), "asset.json")

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if w.String() != wantJSON {
					t.Errorf("unexpected output: %s", w.String())
				}
				return
			}
			if apperror.GetCode(err) != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
			if !errors.Is(err, tt.closeErr) {
				t.Errorf("expected close error as cause, got %v", err)
			}
		})
	}
}

func TestConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConsoleReporter(&buf).Report(context.Background(), testInfo(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Asset id:       42", "Symbol:         TST", "1.5 TST (1500000 raw)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

type failingReporter struct{}

func (failingReporter) Report(context.Context, *domain.Info) error { return errors.New("boom") }

func TestMultiReporter_StopsOnError(t *testing.T) {
	var buf bytes.Buffer
	m := MultiReporter{failingReporter{}, NewJSONReporter(&buf)}

	if err := m.Report(context.Background(), testInfo(t)); err == nil {
		t.Error("expected error")
	}
	if buf.Len() != 0 {
		t.Error("expected later reporters to be skipped")
	}

	var _ app.Reporter = m
}
