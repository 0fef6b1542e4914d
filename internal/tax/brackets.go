package tax

import (
	"github.com/shopspring/decimal"

	"taxcalc/internal/domain"
)

// BoundaryRule documents how income on a bracket edge is taxed.
//
// Tables use whole-dollar lower bounds and a bracket applies only when income
// is strictly greater than its Lower. Income equal to a bound is therefore
// taxed under the bracket below it: 45,000 in 2023-2024 owes 5,092.00, and
// 50,000 owes 6,717.00.
const BoundaryRule = "exclusive-lower"

// bracket builds a bounded bracket from string literals.
func bracket(lower, upper, rate, base string) domain.Bracket {
	return domain.Bracket{
		Lower:   decimal.RequireFromString(lower),
		Upper:   decimal.RequireFromString(upper),
		Rate:    decimal.RequireFromString(rate),
		BaseTax: decimal.RequireFromString(base),
	}
}

// top builds the unbounded highest bracket.
func top(lower, rate, base string) domain.Bracket {
	return domain.Bracket{
		Lower:     decimal.RequireFromString(lower),
		Unbounded: true,
		Rate:      decimal.RequireFromString(rate),
		BaseTax:   decimal.RequireFromString(base),
	}
}

// Australian resident rates, excluding the Medicare levy.
var defaultTables = []domain.Table{
	{
		Year: "2022-2023",
		Brackets: []domain.Bracket{
			bracket("0", "18200", "0", "0"),
			bracket("18200", "45000", "0.19", "0"),
			bracket("45000", "120000", "0.325", "5092"),
			bracket("120000", "180000", "0.37", "29467"),
			top("180000", "0.45", "51667"),
		},
	},
	{
		Year: "2023-2024",
		Brackets: []domain.Bracket{
			bracket("0", "18200", "0", "0"),
			bracket("18200", "45000", "0.19", "0"),
			bracket("45000", "120000", "0.325", "5092"),
			bracket("120000", "180000", "0.37", "29467"),
			top("180000", "0.45", "51667"),
		},
	},
	{
		Year: "2024-2025",
		Brackets: []domain.Bracket{
			bracket("0", "18200", "0", "0"),
			bracket("18200", "45000", "0.16", "0"),
			bracket("45000", "135000", "0.30", "4288"),
			bracket("135000", "190000", "0.37", "31288"),
			top("190000", "0.45", "51638"),
		},
	},
}

// DefaultSchedule returns the built-in bracket tables.
func DefaultSchedule() *Schedule {
	s, err := NewSchedule(defaultTables...)
	if err != nil {
		panic("tax: built-in tables are invalid: " + err.Error())
	}
	return s
}
