package commands

import (
	"github.com/spf13/cobra"

	"github.com/maxviazov/paging-service/internal/service"
)

func newCalcCommand(svc serviceFactory) *cobra.Command {
	var req service.CalculateRequest

	cmd := &cobra.Command{
		Use:     "calc",
		Aliases: []string{"c"},
		Args:    cobra.NoArgs,
		Short:   "Compute the info of one page",
		Example: "  pagecalc calc --page 3 --size 20 --total 119 --pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := svc().Calculate(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			return writeInfo(cmd.OutOrStdout(), info)
		},
	}
	cmd.Flags().IntVar(&req.Page, "page", 1, "one-based page number")
	cmd.Flags().IntVar(&req.Size, "size", 20, "items per page, 0 for a single unbounded page")
	cmd.Flags().IntVar(&req.TotalItems, "total", 0, "total number of items")
	cmd.Flags().BoolVar(&req.IncludePages, "pages", false, "enumerate the item range of every page")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}
