package app

import (
	"context"
	"math/big"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/apm"
	"github.com/fd1az/asset-console/internal/apperror"
	"github.com/fd1az/asset-console/internal/logger"
)

// ServiceConfig holds the construction-time inputs of a CreationService.
type ServiceConfig struct {
	// OpenID overrides the id suggestion. nil uses AssetSource.NextID.
	OpenID   *big.Int
	Defaults *domain.FormState
}

// CreationService owns one asset creation form, observes its results and
// hands the confirmed record to a Reporter.
type CreationService struct {
	source   AssetSource
	reporter Reporter
	log      logger.LoggerInterface
	tracer   apm.Tracer

	evaluations metric.Int64Counter
	submissions metric.Int64Counter

	form      *Form
	latest    *domain.Info
	listeners []ChangeFunc
}

// NewCreationService builds the form from the existing assets in source.
func NewCreationService(source AssetSource, reporter Reporter, log logger.LoggerInterface, cfg ServiceConfig) *CreationService {
	meter := otel.Meter("assets")
	evaluations, _ := meter.Int64Counter("assets.form.evaluations",
		metric.WithDescription("Form recomputations by outcome"))
	submissions, _ := meter.Int64Counter("assets.form.submissions",
		metric.WithDescription("Confirmed asset records by outcome"))

	s := &CreationService{
		source:      source,
		reporter:    reporter,
		log:         log,
		tracer:      apm.NewTracer("assets"),
		evaluations: evaluations,
		submissions: submissions,
	}

	openID := cfg.OpenID
	if openID == nil || openID.Sign() == 0 {
		openID = source.NextID()
	}

	s.form = NewForm(Params{
		AssetIDs:     source.IDs(),
		DefaultValue: cfg.Defaults,
		OnChange:     s.handleChange,
		OpenID:       openID,
	})

	return s
}

// Form returns the form driven by the widgets.
func (s *CreationService) Form() *Form {
	return s.form
}

// Latest returns the most recent record reported by the form, or nil.
func (s *CreationService) Latest() *domain.Info {
	return s.latest
}

// OnChange registers fn to receive every subsequent form result.
func (s *CreationService) OnChange(fn ChangeFunc) {
	s.listeners = append(s.listeners, fn)
}

// Refresh re-reads the existing ids from the source and re-validates.
func (s *CreationService) Refresh(ctx context.Context) {
	ids := s.source.IDs()
	s.log.Debug(ctx, "refreshing existing asset ids", "count", len(ids))
	s.form.SetAssetIDs(ids)
}

// Submit reports the latest valid record. It fails with FORM_INCOMPLETE
// while the form output is nil.
func (s *CreationService) Submit(ctx context.Context) error {
	return s.SubmitRecord(ctx, s.latest)
}

// SubmitRecord reports info, a record taken from the form earlier. It does
// not touch the form, so it may run off the goroutine that drives the form.
func (s *CreationService) SubmitRecord(ctx context.Context, info *domain.Info) error {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "assets.Submit")
	defer span.End()

	submissionID := uuid.NewString()
	span.SetAttributes(attribute.String("submission.id", submissionID))

	if info == nil {
		err := apperror.Validation(apperror.CodeFormIncomplete, "submit")
		span.NoticeError(err)
		s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "incomplete")))
		return err
	}

	span.SetAttributes(
		attribute.String("asset.id", info.AssetID().String()),
		attribute.String("asset.symbol", info.AssetSymbol()),
	)

	if err := s.reporter.Report(ctx, info); err != nil {
		appErr := apperror.Wrap(err, apperror.CodeOutputWriteFailed, "report")
		span.NoticeError(appErr)
		s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "failed")))
		s.log.Error(ctx, "asset report failed", append(appErr.ToLog(), "submission_id", submissionID)...)
		return appErr
	}

	s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "reported")))
	s.log.Info(ctx, "asset reported",
		"submission_id", submissionID,
		"asset_id", info.AssetID().String(),
		"symbol", info.AssetSymbol(),
		"account", info.AccountID(),
	)
	return nil
}

func (s *CreationService) handleChange(info *domain.Info) {
	ctx := context.Background()

	s.latest = info
	s.evaluations.Add(ctx, 1, metric.WithAttributes(attribute.Bool("valid", info != nil)))
	s.log.Debug(ctx, "asset form evaluated", "valid", info != nil)

	for _, fn := range s.listeners {
		fn(info)
	}
}
