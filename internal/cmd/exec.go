package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/sysutil/internal/adapter"
)

func newExecCommand(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "exec <tool> [json-args]",
		Short: "Run a tool with JSON arguments and print its JSON response",
		Long: `Run any tool by name with its arguments given as one JSON object, e.g.

  sysutil exec find '{"path": ".", "type": "f", "names": ["*.go"]}'

--list prints every tool declaration instead.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := adapter.NewRegistry(adapter.NewTools(a.cfg, a.logger)...)
			out := cmd.OutOrStdout()

			if list {
				data, err := json.MarshalIndent(registry.Declarations(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("tool name required, one of %v", registry.Names())
			}

			toolArgs := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &toolArgs); err != nil {
					return fmt.Errorf("parse arguments: %w", err)
				}
			}

			result, err := registry.Execute(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print tool declarations")

	return cmd
}
