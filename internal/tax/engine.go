package tax

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"taxcalc/internal/domain"
)

// ErrInvalidYear is returned when a calculation names a fiscal year that has
// no bracket table. Callers that validate input first never see it.
var ErrInvalidYear = errors.New("invalid fiscal year")

// centPlaces is the rounding precision applied to computed tax.
const centPlaces = 2

// Engine computes progressive tax against a fixed Schedule. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	schedule *Schedule
}

// New returns an engine over schedule.
func New(schedule *Schedule) *Engine { return &Engine{schedule: schedule} }

// AvailableYears returns the supported fiscal years in table order.
func (e *Engine) AvailableYears() []domain.FiscalYear { return e.schedule.Years() }

// Table returns the bracket table for year.
func (e *Engine) Table(year domain.FiscalYear) (domain.Table, bool) {
	return e.schedule.Table(year)
}

// CalculateTax returns the tax owed on income for year, rounded half-up to
// the cent.
func (e *Engine) CalculateTax(year domain.FiscalYear, income decimal.Decimal) (decimal.Decimal, error) {
	b, ok, err := e.find(year, income)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, nil
	}
	owed := b.BaseTax.Add(income.Sub(b.Lower).Mul(b.Rate))
	return owed.Round(centPlaces), nil
}

// MarginalRate returns the rate of the bracket income falls into, or zero
// when no bracket applies.
func (e *Engine) MarginalRate(year domain.FiscalYear, income decimal.Decimal) (decimal.Decimal, error) {
	b, ok, err := e.find(year, income)
	if err != nil || !ok {
		return decimal.Zero, err
	}
	return b.Rate, nil
}

// CalculateResult computes tax for income and derives the after-tax amount
// and effective rate.
func (e *Engine) CalculateResult(year domain.FiscalYear, income decimal.Decimal) (domain.Result, error) {
	owed, err := e.CalculateTax(year, income)
	if err != nil {
		return domain.Result{}, err
	}
	marginal, err := e.MarginalRate(year, income)
	if err != nil {
		return domain.Result{}, err
	}

	var effective float64
	if income.IsPositive() {
		effective = owed.InexactFloat64() / income.InexactFloat64() * 100
	}

	return domain.Result{
		Year:          year,
		Income:        income,
		Tax:           owed,
		AfterTax:      income.Sub(owed),
		EffectiveRate: effective,
		MarginalRate:  marginal,
	}, nil
}

// find returns the last bracket whose Lower is strictly below income.
func (e *Engine) find(year domain.FiscalYear, income decimal.Decimal) (domain.Bracket, bool, error) {
	brackets, ok := e.schedule.brackets(year)
	if !ok {
		return domain.Bracket{}, false, fmt.Errorf("%w: %q", ErrInvalidYear, year)
	}
	for i := len(brackets) - 1; i >= 0; i-- {
		if income.GreaterThan(brackets[i].Lower) {
			return brackets[i], true, nil
		}
	}
	return domain.Bracket{}, false, nil
}

// Compile-time assertion that Engine implements domain.TaxEngine.
var _ domain.TaxEngine = (*Engine)(nil)
