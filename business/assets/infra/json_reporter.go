// Package infra contains reporter adapters for the assets context.
package infra

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/apperror"
)

// JSONReporter writes each record as one JSON line.
type JSONReporter struct {
	out  io.Writer
	path string
}

// NewJSONReporter writes to out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

// NewFileReporter writes to path, replacing its contents on every report.
func NewFileReporter(path string) *JSONReporter {
	return &JSONReporter{path: path}
}

// Report encodes info.
func (r *JSONReporter) Report(_ context.Context, info *domain.Info) error {
	if info == nil {
		return apperror.Validation(apperror.CodeFormIncomplete, "json report")
	}

	if r.path == "" {
		return encode(r.out, info, "json report")
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return apperror.Internal(apperror.CodeOutputWriteFailed, r.path, err)
	}
	return writeAndClose(f, info, r.path)
}

// writeAndClose reports a failed close, which is where buffered file
// writes surface.
func writeAndClose(wc io.WriteCloser, info *domain.Info, path string) error {
	if err := encode(wc, info, path); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return apperror.Internal(apperror.CodeOutputWriteFailed, path, err)
	}
	return nil
}

func encode(w io.Writer, info *domain.Info, where string) error {
	if err := json.NewEncoder(w).Encode(info); err != nil {
		return apperror.Internal(apperror.CodeOutputWriteFailed, where, err)
	}
	return nil
}
