package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/maxviazov/paging-service/internal/service"
	"github.com/maxviazov/paging-service/pkg/paging"
)

func newTurnCommand(svc serviceFactory) *cobra.Command {
	var (
		page         int
		total        int
		includePages bool
	)

	cmd := &cobra.Command{
		Use:   "turn [file|-]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Move a persisted state to another page",
		Long:  "Move a persisted state to another page. Without --total the state's own total is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var state paging.State
			if err := json.Unmarshal(payload, &state); err != nil {
				return err
			}

			req := service.TurnRequest{State: state, Page: page, IncludePages: includePages}
			if cmd.Flags().Changed("total") {
				req.TotalItems = &total
			}
			info, err := svc().Turn(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			return writeInfo(cmd.OutOrStdout(), info)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "one-based page number to turn to")
	cmd.Flags().IntVar(&total, "total", 0, "new total number of items")
	cmd.Flags().BoolVar(&includePages, "pages", false, "enumerate the item range of every page")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}
