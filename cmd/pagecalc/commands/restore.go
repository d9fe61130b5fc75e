package commands

import (
	"github.com/spf13/cobra"
)

func newRestoreCommand(svc serviceFactory) *cobra.Command {
	var includePages bool

	cmd := &cobra.Command{
		Use:     "restore [file|-]",
		Args:    cobra.MaximumNArgs(1),
		Short:   "Recompute the info of a persisted state",
		Example: `  echo '{"currentPage":{"number":3,"size":20},"totalItems":119}' | pagecalc restore`,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			info, err := svc().Restore(cmd.Context(), payload, includePages)
			if err != nil {
				return describe(err)
			}
			return writeInfo(cmd.OutOrStdout(), info)
		},
	}
	cmd.Flags().BoolVar(&includePages, "pages", false, "enumerate the item range of every page")
	return cmd
}
