package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/sysutil/internal/tool/cat"
)

func newCatCommand(a *app) *cobra.Command {
	var dto cat.CatDTO

	cmd := &cobra.Command{
		Use:   "cat <file>... [-o output [--append]]",
		Short: "Concatenate files",
		Long: `Concatenate files to stdout, or into an output file with -o. The output
is truncated unless --append is given. Files that cannot be opened are
reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dto.Files = args
			req, err := cat.NewCatRequest(dto)
			if err != nil {
				return err
			}
			resp, err := cat.NewCatTool(a.fs, a.logger, a.cfg).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			if req.Output() == "" {
				fmt.Fprint(cmd.OutOrStdout(), resp.Content)
			}
			if len(resp.Skipped) > 0 {
				return ErrOperationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dto.Output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&dto.Append, "append", false, "append to the output file")

	return cmd
}
