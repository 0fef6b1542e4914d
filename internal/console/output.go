package console

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"taxcalc/internal/domain"
)

// Output writes messages and result summaries to w.
type Output struct {
	w io.Writer
	p *message.Printer
}

// NewOutput returns an Output writing to w with English number formatting.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w, p: message.NewPrinter(language.English)}
}

// Log writes msg on its own line.
func (o *Output) Log(msg string) {
	fmt.Fprintln(o.w, msg)
}

// ShowResult writes a summary of r.
func (o *Output) ShowResult(r domain.Result) {
	fmt.Fprint(o.w, o.Summary(r))
}

// Summary renders r the way ShowResult prints it.
func (o *Output) Summary(r domain.Result) string {
	return o.p.Sprintf("\nTax calculation for %s\n", r.Year.String()) +
		o.p.Sprintf("  Taxable income:    %s\n", o.Money(r.Income)) +
		o.p.Sprintf("  Tax payable:       %s\n", o.Money(r.Tax)) +
		o.p.Sprintf("  After-tax income:  %s\n", o.Money(r.AfterTax)) +
		o.p.Sprintf("  Effective rate:    %.2f%%\n", r.EffectiveRate) +
		o.p.Sprintf("  Marginal rate:     %.2f%%\n", r.MarginalRate.Shift(2).InexactFloat64())
}

// Money formats d as dollars with thousands separators and two decimals.
func (o *Output) Money(d decimal.Decimal) string {
	return o.p.Sprintf("$%.2f", d.Round(2).InexactFloat64())
}

// Compile-time assertion that Output implements domain.OutputProvider.
var _ domain.OutputProvider = (*Output)(nil)
