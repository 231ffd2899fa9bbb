package app

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/apperror"
	"github.com/fd1az/asset-console/internal/logger"
)

type fakeSource struct {
	ids  []*big.Int
	next *big.Int
}

func (s *fakeSource) IDs() []*big.Int  { return s.ids }
func (s *fakeSource) NextID() *big.Int { return s.next }

type fakeReporter struct {
	reported []*domain.Info
	err      error
}

func (r *fakeReporter) Report(_ context.Context, info *domain.Info) error {
	if r.err != nil {
		return r.err
	}
	r.reported = append(r.reported, info)
	return nil
}

func newTestService(src *fakeSource, rep Reporter, cfg ServiceConfig) *CreationService {
	log := logger.New(io.Discard, logger.LevelDebug, "test", nil)
	return NewCreationService(src, rep, log, cfg)
}

func TestCreationService_OpenIDFromSource(t *testing.T) {
	src := &fakeSource{ids: []*big.Int{big.NewInt(1)}, next: big.NewInt(2)}
	svc := newTestService(src, &fakeReporter{}, ServiceConfig{})

	if got := svc.Form().State().AssetID; got.Int64() != 2 {
		t.Errorf("expected open id 2, got %s", got)
	}

	svc = newTestService(src, &fakeReporter{}, ServiceConfig{OpenID: big.NewInt(77)})
	if got := svc.Form().State().AssetID; got.Int64() != 77 {
		t.Errorf("expected configured open id 77, got %s", got)
	}
}

func TestCreationService_SubmitIncomplete(t *testing.T) {
	rep := &fakeReporter{}
	svc := newTestService(&fakeSource{next: big.NewInt(1)}, rep, ServiceConfig{})

	err := svc.Submit(context.Background())
	if !errors.Is(err, apperror.New(apperror.CodeFormIncomplete)) {
		t.Fatalf("expected FORM_INCOMPLETE, got %v", err)
	}
	if apperror.ExitCodeOf(err) != apperror.ExitInvalid {
		t.Errorf("expected invalid exit code, got %d", apperror.ExitCodeOf(err))
	}
	if len(rep.reported) != 0 {
		t.Error("expected nothing to be reported")
	}
}

func TestCreationService_SubmitReportsLatest(t *testing.T) {
	rep := &fakeReporter{}
	svc := newTestService(&fakeSource{next: big.NewInt(1)}, rep, ServiceConfig{})

	var seen []*domain.Info
	svc.OnChange(func(info *domain.Info) { seen = append(seen, info) })

	fillValid(svc.Form())
	if len(seen) != 6 {
		t.Fatalf("expected listener to see 6 results, got %d", len(seen))
	}
	if svc.Latest() == nil {
		t.Fatal("expected a latest record")
	}

	if err := svc.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.reported) != 1 || !rep.reported[0].Equal(svc.Latest()) {
		t.Errorf("expected the latest record to be reported, got %v", rep.reported)
	}
}

func TestCreationService_SubmitReporterFailure(t *testing.T) {
	rep := &fakeReporter{err: errors.New("broken pipe")}
	svc := newTestService(&fakeSource{next: big.NewInt(1)}, rep, ServiceConfig{})
	fillValid(svc.Form())

	err := svc.Submit(context.Background())
	if apperror.GetCode(err) != apperror.CodeOutputWriteFailed {
		t.Errorf("expected OUTPUT_WRITE_FAILED, got %v", err)
	}
}

func TestCreationService_Refresh(t *testing.T) {
	src := &fakeSource{next: big.NewInt(1)}
	svc := newTestService(src, &fakeReporter{}, ServiceConfig{})
	fillValid(svc.Form())
	if svc.Latest() == nil {
		t.Fatal("expected valid record")
	}

	src.ids = []*big.Int{big.NewInt(42)}
	svc.Refresh(context.Background())

	if svc.Latest() != nil {
		t.Error("expected refresh to invalidate a now-taken id")
	}
}

func TestCreationService_SubmitRecord(t *testing.T) {
	tests := []struct {
		name     string
		take     bool
		wantCode apperror.Code
	}{
		{name: "taken_record_survives_later_changes", take: true},
		{name: "nil_record_is_incomplete", take: false, wantCode: apperror.CodeFormIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &fakeReporter{}
			src := &fakeSource{next: big.NewInt(1)}
			svc := newTestService(src, rep, ServiceConfig{})
			fillValid(svc.Form())

			var info *domain.Info
			if tt.take {
				info = svc.Form().Output()
			}

			// The id is taken after the record was captured.
			src.ids = []*big.Int{big.NewInt(42)}
			svc.Refresh(context.Background())
			if svc.Latest() != nil {
				t.Fatal("expected the form to be invalid after the refresh")
			}

			err := svc.SubmitRecord(context.Background(), info)
			if tt.wantCode != "" {
				if apperror.GetCode(err) != tt.wantCode {
					t.Errorf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rep.reported) != 1 || rep.reported[0].AssetID().Int64() != 42 {
				t.Errorf("expected the captured record, got %v", rep.reported)
			}
		})
	}
}
