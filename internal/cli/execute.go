package cli

import (
	"github.com/spf13/cobra"

	"ldot.dev/ldot/internal/actions"
	"ldot.dev/ldot/internal/cli/common"
	"ldot.dev/ldot/internal/runtime"
)

// newExecuteCmd creates the execute command
func newExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "execute [stack] <project> <stage>",
		Aliases: []string{"x", "exec", "e"},
		Short:   "Run every command of a project stage",
		Long: `Run every command of a project stage.

The stack defaults to the one set with 'ldot config default'. Every command
runs even when an earlier one fails; the command exits non-zero after the
report when any of them failed.`,
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: common.CompleteStackNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.ExecuteOptions{}
			if len(args) == 3 {
				opts.Stack, args = args[0], args[1:]
			}
			opts.Project, opts.Stage = args[0], args[1]

			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ExecuteAction(ctx, opts)
			})
		},
	}
}

// newScriptCmd creates the script command
func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "script [stack] <script>",
		Aliases:           []string{"s"},
		Short:             "Run every command of a script",
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: common.CompleteStackNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.ScriptOptions{}
			if len(args) == 2 {
				opts.Stack, args = args[0], args[1:]
			}
			opts.Script = args[0]

			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ScriptAction(ctx, opts)
			})
		},
	}
}
