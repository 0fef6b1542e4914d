package tax

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"taxcalc/internal/domain"
)

// Fields named in validation errors.
const (
	FieldYear   = "year"
	FieldIncome = "income"
)

// MaxIncome is the largest income accepted from user input.
var MaxIncome = decimal.RequireFromString("999999999.99")

// Exponent bounds checked before any arithmetic on a parsed income, since
// comparing decimals rescales them by the exponent difference.
const (
	maxIncomeDigits   = 12
	minIncomeExponent = -30
)

var yearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// ValidateYear checks input against the YYYY-YYYY pattern and the schedule.
// On success the input is returned unchanged.
func (e *Engine) ValidateYear(input string) (domain.FiscalYear, error) {
	if strings.TrimSpace(input) == "" {
		return "", domain.NewValidationError(FieldYear, "Year cannot be empty")
	}
	years := e.AvailableYears()
	if !yearPattern.MatchString(input) {
		return "", domain.NewValidationError(FieldYear,
			fmt.Sprintf("Year must be in format YYYY-YYYY (e.g., %s)", years[0]))
	}
	year := domain.FiscalYear(input)
	if _, ok := e.schedule.brackets(year); !ok {
		names := make([]string, len(years))
		for i, y := range years {
			names[i] = y.String()
		}
		return "", domain.NewValidationError(FieldYear,
			fmt.Sprintf("Year %s is not supported. Available years: %s", input, strings.Join(names, ", ")))
	}
	return year, nil
}

// ValidateIncome parses a non-negative income no larger than MaxIncome.
// Surrounding whitespace is ignored and decimals are allowed.
func (e *Engine) ValidateIncome(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, domain.NewValidationError(FieldIncome, "Income cannot be empty")
	}
	income, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(FieldIncome, "Please enter a valid numeric income")
	}
	if income.IsNegative() {
		return decimal.Zero, domain.NewValidationError(FieldIncome, "Income cannot be negative")
	}
	if income.IsZero() {
		return decimal.Zero, nil
	}
	if exp := int(income.Exponent()); exp > 0 && income.NumDigits()+exp > maxIncomeDigits {
		return decimal.Zero, domain.NewValidationError(FieldIncome, "Income exceeds maximum allowed value")
	} else if exp < minIncomeExponent {
		return decimal.Zero, domain.NewValidationError(FieldIncome, "Please enter a valid numeric income")
	}
	if income.GreaterThan(MaxIncome) {
		return decimal.Zero, domain.NewValidationError(FieldIncome, "Income exceeds maximum allowed value")
	}
	return income, nil
}
