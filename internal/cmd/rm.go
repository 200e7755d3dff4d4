package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Cyclone1070/sysutil/internal/tool/remove"
	"github.com/Cyclone1070/sysutil/internal/tool/tree"
)

func newRmCommand(a *app) *cobra.Command {
	var dto remove.RmDTO

	cmd := &cobra.Command{
		Use:   "rm [-r] [-f] <path>...",
		Short: "Remove files or directories",
		Long: `Remove files. With -r, directory operands are removed together with
everything below them: files first, then directories deepest first.
Failures are reported and the remaining operands are still processed.

Exit code: 0 if every deletion succeeded, 1 otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dto.Paths = args
			req, err := remove.NewRmRequest(dto)
			if err != nil {
				return err
			}
			tool := remove.NewRmTool(a.fs, tree.NewMerger(a.fs, a.walker))
			resp, err := tool.Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.reportFailures(resp.Success, resp.Failed, resp.Failures)
		},
	}

	cmd.Flags().BoolVarP(&dto.Recursive, "recursive", "r", false, "remove directories and their contents")
	cmd.Flags().BoolVarP(&dto.Force, "force", "f", false, "accepted for compatibility, has no effect")

	return cmd
}
