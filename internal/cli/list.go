package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all comments",
		Long:  "List every comment on the board, in the order the API returns them.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	comments, err := newAPIClient().List()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), comments)
	}

	return printCommentTable(cmd.OutOrStdout(), comments)
}
