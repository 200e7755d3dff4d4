package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/sysutil/internal/tool/find"
)

func newFindCommand(a *app) *cobra.Command {
	var dto find.FindDTO

	cmd := &cobra.Command{
		Use:   "find [root] [--type d|f] [--maxdepth n] [--name pattern]...",
		Short: "List directory entries matching type and name",
		Long: `List every entry below root (default .). Directories are listed before
files, each in natural order. --name takes a glob where * matches any run of
characters and ? exactly one; several --name flags match any of them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				dto.Path = args[0]
			}
			req, err := find.NewFindRequest(dto, a.cfg)
			if err != nil {
				return err
			}
			resp, err := find.NewFindTool(a.fs, a.walker, a.fs).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range resp.Matches {
				fmt.Fprintln(out, m)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dto.Type, "type", "", "d for directories, f for files")
	cmd.Flags().IntVar(&dto.MaxDepth, "maxdepth", 0, "maximum depth, 0 for unbounded")
	cmd.Flags().StringArrayVar(&dto.Names, "name", nil, "basename glob, repeatable")
	cmd.Flags().BoolVar(&dto.SkipIgnored, "skip-ignored", false, "drop entries matched by root/.gitignore")

	return cmd
}
