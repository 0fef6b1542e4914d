package tax

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"taxcalc/internal/domain"
)

var (
	// ErrEmptySchedule is returned when a schedule holds no tables.
	ErrEmptySchedule = errors.New("schedule has no tables")
	// ErrDuplicateYear is returned when two tables share a fiscal year.
	ErrDuplicateYear = errors.New("duplicate fiscal year")
	// ErrMalformedTable is returned when a table breaks the bracket invariants.
	ErrMalformedTable = errors.New("malformed bracket table")
)

// Schedule is the read-only set of bracket tables, kept in insertion order.
// Build one with NewSchedule and never mutate it afterwards.
type Schedule struct {
	years  []domain.FiscalYear
	tables map[domain.FiscalYear]domain.Table
}

// NewSchedule validates tables and returns a Schedule holding them in the
// order given.
func NewSchedule(tables ...domain.Table) (*Schedule, error) {
	if len(tables) == 0 {
		return nil, ErrEmptySchedule
	}
	s := &Schedule{
		years:  make([]domain.FiscalYear, 0, len(tables)),
		tables: make(map[domain.FiscalYear]domain.Table, len(tables)),
	}
	for _, t := range tables {
		if _, dup := s.tables[t.Year]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateYear, t.Year)
		}
		if err := checkTable(t); err != nil {
			return nil, err
		}
		brackets := append([]domain.Bracket(nil), t.Brackets...)
		s.years = append(s.years, t.Year)
		s.tables[t.Year] = domain.Table{Year: t.Year, Brackets: brackets}
	}
	return s, nil
}

// Merge returns a new schedule with the tables of s followed by extra. A table
// in extra whose year already exists replaces it in place.
func (s *Schedule) Merge(extra ...domain.Table) (*Schedule, error) {
	out := make([]domain.Table, 0, len(s.years)+len(extra))
	index := make(map[domain.FiscalYear]int, len(s.years))
	for _, y := range s.years {
		index[y] = len(out)
		out = append(out, s.tables[y])
	}
	for _, t := range extra {
		if i, ok := index[t.Year]; ok {
			out[i] = t
			continue
		}
		index[t.Year] = len(out)
		out = append(out, t)
	}
	return NewSchedule(out...)
}

// Years returns the fiscal years in insertion order.
func (s *Schedule) Years() []domain.FiscalYear {
	return append([]domain.FiscalYear(nil), s.years...)
}

// Table returns a copy of the table for year.
func (s *Schedule) Table(year domain.FiscalYear) (domain.Table, bool) {
	t, ok := s.tables[year]
	if !ok {
		return domain.Table{}, false
	}
	t.Brackets = append([]domain.Bracket(nil), t.Brackets...)
	return t, true
}

func (s *Schedule) brackets(year domain.FiscalYear) ([]domain.Bracket, bool) {
	t, ok := s.tables[year]
	return t.Brackets, ok
}

// checkTable enforces: first bracket starts at zero, brackets are contiguous,
// only the last one is unbounded, rates are within [0, 1].
func checkTable(t domain.Table) error {
	if t.Year == "" {
		return fmt.Errorf("%w: missing year", ErrMalformedTable)
	}
	if len(t.Brackets) == 0 {
		return fmt.Errorf("%w: %s has no brackets", ErrMalformedTable, t.Year)
	}
	if !t.Brackets[0].Lower.IsZero() {
		return fmt.Errorf("%w: %s first bracket must start at 0", ErrMalformedTable, t.Year)
	}
	one := decimal.NewFromInt(1)
	last := len(t.Brackets) - 1
	for i, b := range t.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: %s bracket %d rate %s out of range", ErrMalformedTable, t.Year, i, b.Rate)
		}
		if b.BaseTax.IsNegative() {
			return fmt.Errorf("%w: %s bracket %d has negative base tax", ErrMalformedTable, t.Year, i)
		}
		if i == last {
			if !b.Unbounded {
				return fmt.Errorf("%w: %s last bracket must be unbounded", ErrMalformedTable, t.Year)
			}
			continue
		}
		if b.Unbounded {
			return fmt.Errorf("%w: %s bracket %d is unbounded but not last", ErrMalformedTable, t.Year, i)
		}
		if !b.Upper.GreaterThan(b.Lower) {
			return fmt.Errorf("%w: %s bracket %d is empty", ErrMalformedTable, t.Year, i)
		}
		if !b.Upper.Equal(t.Brackets[i+1].Lower) {
			return fmt.Errorf("%w: %s gap between bracket %d and %d", ErrMalformedTable, t.Year, i, i+1)
		}
	}
	return nil
}
