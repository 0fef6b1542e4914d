package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// calc --year Y --income N: one-shot calculation without prompting.
func calcCmd() *cobra.Command {
	var (
		year   string
		income string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate tax for a year and income without prompting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := appCtx.Engine.ValidateYear(year)
			if err != nil {
				return err
			}
			in, err := appCtx.Engine.ValidateIncome(income)
			if err != nil {
				return err
			}
			res, err := appCtx.Engine.CalculateResult(y, in)
			if err != nil {
				return fmt.Errorf("calculating %s: %w", y, err)
			}

			if appCtx.History != nil {
				if _, err := appCtx.History.Record(res); err != nil {
					appCtx.Log.Warn("history not saved", zap.Error(err))
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			appCtx.Output.ShowResult(res)
			return nil
		},
	}
	cmd.Flags().StringVar(&year, "year", "", "fiscal year, e.g. 2023-2024")
	cmd.Flags().StringVar(&income, "income", "", "taxable income in dollars")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}
