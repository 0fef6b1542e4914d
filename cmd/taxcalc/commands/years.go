package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taxcalc/internal/domain"
)

// years [year]: list supported fiscal years, or the brackets of one year.
func yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years [year]",
		Short: "List supported fiscal years or show one year's brackets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, y := range appCtx.Engine.AvailableYears() {
					fmt.Fprintln(w, y)
				}
				return nil
			}

			year, err := appCtx.Engine.ValidateYear(args[0])
			if err != nil {
				return err
			}
			table, _ := appCtx.Engine.Table(year)

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "FROM\tTO\tRATE\tBASE TAX")
			for _, b := range table.Brackets {
				fmt.Fprintf(tw, "%s\t%s\t%s%%\t%s\n",
					appCtx.Output.Money(b.Lower), upper(b), b.Rate.Shift(2).StringFixed(1),
					appCtx.Output.Money(b.BaseTax))
			}
			return tw.Flush()
		},
	}
}

func upper(b domain.Bracket) string {
	if b.Unbounded {
		return "and over"
	}
	return appCtx.Output.Money(b.Upper)
}
