package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FiscalYear identifies which bracket table applies, e.g. "2023-2024".
type FiscalYear string

// String returns the string form of the fiscal year.
func (y FiscalYear) String() string { return string(y) }

// Bracket is a contiguous income range [Lower, Upper) taxed at a single
// marginal rate. BaseTax is the cumulative tax owed at Lower from all lower
// brackets. The top bracket of a table sets Unbounded and leaves Upper zero.
type Bracket struct {
	Lower     decimal.Decimal `json:"lower"`
	Upper     decimal.Decimal `json:"upper"`
	Unbounded bool            `json:"unbounded,omitempty"`
	Rate      decimal.Decimal `json:"rate"`
	BaseTax   decimal.Decimal `json:"base_tax"`
}

// MarshalJSON leaves out upper for the unbounded top bracket.
func (b Bracket) MarshalJSON() ([]byte, error) {
	type bracketJSON struct {
		Lower     decimal.Decimal  `json:"lower"`
		Upper     *decimal.Decimal `json:"upper,omitempty"`
		Unbounded bool             `json:"unbounded,omitempty"`
		Rate      decimal.Decimal  `json:"rate"`
		BaseTax   decimal.Decimal  `json:"base_tax"`
	}
	out := bracketJSON{Lower: b.Lower, Unbounded: b.Unbounded, Rate: b.Rate, BaseTax: b.BaseTax}
	if !b.Unbounded {
		out.Upper = &b.Upper
	}
	return json.Marshal(out)
}

// Table is the ordered bracket list for one fiscal year, ascending by Lower.
type Table struct {
	Year     FiscalYear `json:"year"`
	Brackets []Bracket  `json:"brackets"`
}

// Result is the immutable outcome of one calculation request.
//
// EffectiveRate is a percentage carried at full float precision; only Tax is
// rounded to the cent.
type Result struct {
	Year          FiscalYear      `json:"year"`
	Income        decimal.Decimal `json:"income"`
	Tax           decimal.Decimal `json:"tax"`
	AfterTax      decimal.Decimal `json:"after_tax"`
	EffectiveRate float64         `json:"effective_rate"`
	MarginalRate  decimal.Decimal `json:"marginal_rate"`
}

// Record is a persisted history entry wrapping a Result.
type Record struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Result    Result    `json:"result"`
}
