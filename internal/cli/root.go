package cli

import (
	"github.com/spf13/cobra"

	"ldot.dev/ldot/internal/cli/common"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ldot",
		Short: "ldot runs the stages and scripts of your local development stacks",
		Long: `ldot runs the stages and scripts of your local development stacks.

Describe a stack in an ldot_stack.json file, register it with 'ldot load',
then run one of its stages with 'ldot execute <stack> <project> <stage>'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(common.FlagRegistry, "", "Path to the registry file (overrides LDOT_REGISTRY)")
	rootCmd.PersistentFlags().Bool(common.FlagDebug, false, "Print debug output (same as LDOT_DEBUG=true)")
	rootCmd.PersistentFlags().Bool(common.FlagShellWords, false, "Split commands with shell quoting rules instead of plain whitespace (same as LDOT_SHELL_WORDS=true)")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(version, commit, date))
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newUnloadCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newExecuteCmd())
	rootCmd.AddCommand(newScriptCmd())

	return rootCmd
}
