package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"taxcalc/internal/app"
)

// history: print recorded calculations, newest first.
func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.OpenHistory(appCtx.Config).List(limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(w, "No calculations recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tYEAR\tINCOME\tTAX\tEFFECTIVE")
			for _, rec := range records {
				r := rec.Result
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f%%\n",
					rec.CreatedAt.Local().Format(time.DateTime), r.Year,
					appCtx.Output.Money(r.Income), appCtx.Output.Money(r.Tax), r.EffectiveRate)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum records to show (0 for all)")
	return cmd
}
