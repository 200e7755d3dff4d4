package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/sysutil/internal/tool/which"
)

func newWhichCommand(a *app) *cobra.Command {
	var dto which.WhichDTO

	cmd := &cobra.Command{
		Use:   "which <program>",
		Short: "Show the full path of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dto.Program = args[0]
			req, err := which.NewWhichRequest(dto)
			if err != nil {
				return err
			}
			resp, err := which.NewWhichTool(a.fs, a.cfg).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resp.Path != "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Path)
			}
			if !resp.Found {
				return ErrOperationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dto.Fallback, "fallback", "", "print this when the program is not found")

	return cmd
}
