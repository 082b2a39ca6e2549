package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rebind/internal/app"
	"go.trai.ch/rebind/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile package versions and rewrite binding redirects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.RunOptions{}
			opts.Root, _ = cmd.Flags().GetString("root")
			opts.Mode, _ = cmd.Flags().GetString("mode")
			opts.Source, _ = cmd.Flags().GetString("source")
			opts.Parallelism, _ = cmd.Flags().GetInt("parallelism")
			opts.NoCache, _ = cmd.Flags().GetBool("no-cache")
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
			opts.Checkout, _ = cmd.Flags().GetBool("checkout")
			if explicit, _ := cmd.Flags().GetBool("explicit"); explicit {
				opts.Mode = string(domain.ModeExplicit)
			}

			report, err := c.app.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			renderReport(cmd.OutOrStdout(), report, opts.DryRun)
			return nil
		},
	}
	cmd.Flags().StringP("mode", "m", "", "Reconciliation mode: aligned or explicit")
	cmd.Flags().BoolP("explicit", "e", false, "Keep each project's own versions (same as --mode explicit)")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the persisted identity cache")
	cmd.Flags().Bool("dry-run", false, "Report what would change without writing files")
	cmd.Flags().Bool("checkout", false, "Check out changed files with the configured version control tool")
	cmd.Flags().IntP("parallelism", "p", 0, "Maximum concurrent registry queries")
	cmd.Flags().StringP("source", "s", "", "Package source passed to the registry tool")
	cmd.MarkFlagsMutuallyExclusive("mode", "explicit")
	return cmd
}
