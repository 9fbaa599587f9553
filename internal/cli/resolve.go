package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-board/internal/endpoint"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [host]",
		Short: "Show the comment API URL for a host",
		Long:  "Print the comment API URL the board uses when served on the given host. Defaults to the configured host.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runResolve,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	host := getHost()
	if len(args) == 1 {
		host = args[0]
	}

	url := endpoint.Resolve(host)

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]string{"host": host, "endpoint": url})
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), url); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
