package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Cyclone1070/sysutil/internal/tool/mkdir"
)

func newMkdirCommand(a *app) *cobra.Command {
	var dto mkdir.MkdirDTO

	cmd := &cobra.Command{
		Use:   "mkdir [-p] [-m mode] <dir>...",
		Short: "Create directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dto.Paths = args
			req, err := mkdir.NewMkdirRequest(dto, a.cfg)
			if err != nil {
				return err
			}
			resp, err := mkdir.NewMkdirTool(a.fs).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.reportFailures(resp.Success, resp.Failed, resp.Failures)
		},
	}

	cmd.Flags().BoolVarP(&dto.Parents, "parents", "p", false, "create missing parent directories")
	cmd.Flags().StringVarP(&dto.Mode, "mode", "m", "", "octal permission bits (default from config, 0777)")

	return cmd
}
