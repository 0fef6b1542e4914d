package calculator

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxcalc/internal/domain"
)

// Service runs the prompt loop against injected collaborators.
type Service struct {
	engine   domain.TaxEngine
	in       domain.InputProvider
	out      domain.OutputProvider
	recorder domain.ResultRecorder
	log      *zap.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithRecorder records every produced result.
func WithRecorder(r domain.ResultRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a calculator over engine that reads from in and writes to out.
func New(engine domain.TaxEngine, in domain.InputProvider, out domain.OutputProvider, opts ...Option) *Service {
	s := &Service{engine: engine, in: in, out: out, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// YearPrompt returns the text shown when asking for a fiscal year.
func (s *Service) YearPrompt() string {
	example := "2023-2024"
	if years := s.engine.AvailableYears(); len(years) > 0 {
		example = years[0].String()
	}
	return fmt.Sprintf("Enter fiscal year (e.g., %s): ", example)
}

// IncomePrompt is the text shown when asking for an income.
const IncomePrompt = "Enter your taxable income: $"

// GetValidYear prompts until the reply passes year validation. Each rejected
// reply is reported through the output provider.
func (s *Service) GetValidYear(ctx context.Context) (domain.FiscalYear, error) {
	prompt := s.YearPrompt()
	for {
		raw, err := s.in.Prompt(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("reading fiscal year: %w", err)
		}
		year, err := s.engine.ValidateYear(raw)
		if err == nil {
			return year, nil
		}
		s.log.Debug("rejected year", zap.String("input", raw), zap.Error(err))
		s.out.Log(err.Error())
	}
}

// GetValidIncome prompts until the reply passes income validation.
func (s *Service) GetValidIncome(ctx context.Context) (decimal.Decimal, error) {
	for {
		raw, err := s.in.Prompt(ctx, IncomePrompt)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("reading income: %w", err)
		}
		income, err := s.engine.ValidateIncome(raw)
		if err == nil {
			return income, nil
		}
		s.log.Debug("rejected income", zap.Error(err))
		s.out.Log(err.Error())
	}
}

// Run collects a valid year and income, computes the result, shows it and
// returns it. A configured recorder failing is logged, not returned.
func (s *Service) Run(ctx context.Context) (domain.Result, error) {
	year, err := s.GetValidYear(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	income, err := s.GetValidIncome(ctx)
	if err != nil {
		return domain.Result{}, err
	}

	res, err := s.engine.CalculateResult(year, income)
	if err != nil {
		return domain.Result{}, fmt.Errorf("calculating %s: %w", year, err)
	}
	s.out.ShowResult(res)
	s.log.Info("calculated",
		zap.Stringer("year", res.Year),
		zap.Stringer("tax", res.Tax),
		zap.Float64("effective_rate", res.EffectiveRate),
	)

	if s.recorder != nil {
		rec, err := s.recorder.Record(res)
		if err != nil {
			s.log.Warn("history not saved", zap.Error(err))
		} else {
			s.log.Debug("history saved", zap.Stringer("id", rec.ID))
		}
	}
	return res, nil
}
