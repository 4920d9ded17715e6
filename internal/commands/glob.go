package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdnf-go/tdnf-util/internal/ui"
	"github.com/tdnf-go/tdnf-util/pkg/errcode"
	"github.com/tdnf-go/tdnf-util/pkg/glob"
)

func NewIsGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isglob <string>...",
		Short: "Report whether strings contain glob metacharacters",
		Long: `Print true for each argument containing '*', '?' or '[', false otherwise.

Example:
  tdnf-util isglob 'kernel*' bash`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				//nolint:errcheck // Writing to stdout, error not actionable
				fmt.Fprintln(out, ui.FormatBool(glob.IsGlob(arg)))
			}
			return nil
		},
	}
}

func NewMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> <name>...",
		Short: "Filter names by a package pattern",
		Long: `Print the names matching pattern, in argument order. Patterns without glob
metacharacters match exactly.

Example:
  tdnf-util match 'python3-*' python3-pip python3-libs bash`,
		Args: cobra.MinimumNArgs(2),
		RunE: runMatch,
	}
}

func runMatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	pattern := args[0]
	matches, err := glob.MatchNames(pattern, args[1:])
	if err != nil {
		return ui.NewValidationError(err)
	}
	return printMatches(cmd, "match", pattern, matches)
}

func NewGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Expand a path pattern",
		Long: `Print the paths matching pattern. '**' matches any number of directories.

Example:
  tdnf-util glob '/etc/yum.repos.d/*.repo'`,
		Args: cobra.ExactArgs(1),
		RunE: runGlob,
	}
}

func runGlob(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	pattern := args[0]
	matches, err := glob.ExpandPath(pattern)
	if err != nil {
		return ui.NewValidationError(err)
	}
	return printMatches(cmd, "glob", pattern, matches)
}

func printMatches(cmd *cobra.Command, op, pattern string, matches []string) error {
	if len(matches) == 0 {
		return ui.NewValidationError(errcode.New(errcode.CodeNoMatch, op, pattern))
	}

	out := cmd.OutOrStdout()
	for _, m := range matches {
		//nolint:errcheck // Writing to stdout, error not actionable
		fmt.Fprintln(out, m)
	}
	return nil
}
