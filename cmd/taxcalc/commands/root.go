package commands

import (
	"context"

	"github.com/spf13/cobra"

	"taxcalc/internal/app"
)

var appCtx *app.App

// Execute runs the taxcalc CLI against the process's standard streams.
func Execute(ctx context.Context) error {
	return NewRootCmd(app.StdIO()).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Without a subcommand it runs the
// interactive calculator once.
func NewRootCmd(streams app.IO) *cobra.Command {
	root := &cobra.Command{
		Use:          "taxcalc",
		Short:        "Progressive income tax calculator",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			appCtx, err = app.New(cfg, streams)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Input.Close()
				_ = appCtx.Log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appCtx.Calculator.Run(cmd.Context())
			return err
		},
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.ErrOut)

	root.PersistentFlags().String(app.KeyHome, "", "config and history dir (default ~/.taxcalc)")
	root.PersistentFlags().String(app.KeyBrackets, "", "YAML file with extra bracket tables")
	root.PersistentFlags().Bool(app.KeyHistory, false, "record every calculation in the history file")
	root.PersistentFlags().StringP(app.KeyPassphrase, "p", "", "passphrase to encrypt the history file")
	root.PersistentFlags().String(app.KeyLogLevel, "warn", "diagnostics level: debug, info, warn, error")

	root.AddCommand(calcCmd(), yearsCmd(), historyCmd())
	return root
}
