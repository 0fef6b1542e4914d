package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// TaxEngine computes tax and validates raw user input.
type TaxEngine interface {
	AvailableYears() []FiscalYear
	CalculateTax(year FiscalYear, income decimal.Decimal) (decimal.Decimal, error)
	CalculateResult(year FiscalYear, income decimal.Decimal) (Result, error)
	ValidateYear(input string) (FiscalYear, error)
	ValidateIncome(input string) (decimal.Decimal, error)
}

// InputProvider asks the user for a line of input.
type InputProvider interface {
	// Prompt displays text and returns the reply with surrounding whitespace
	// removed. It blocks until a line is available or ctx is done.
	Prompt(ctx context.Context, text string) (string, error)
}

// OutputProvider shows messages and results to the user.
type OutputProvider interface {
	Log(message string)
	ShowResult(result Result)
}

// ResultRecorder keeps a record of produced results.
type ResultRecorder interface {
	Record(result Result) (Record, error)
}

// HistoryStore persists history records.
type HistoryStore interface {
	AppendRecord(rec Record) error
	LoadRecords() ([]Record, error)
}
