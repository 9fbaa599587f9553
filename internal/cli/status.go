package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-board/internal/client"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the comment API connection",
		Long:  "Shows the host and resolved comment API URL, then tests the API with a single list request.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd)
		},
	}
}

func runStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	c := newAPIClient()

	host := "(ignored, API URL set)"
	if getAPIURL() == "" {
		host = getHost()
	}
	if err := writef(out, "Host:     %s\nEndpoint: %s\n", host, c.Endpoint()); err != nil {
		return err
	}

	comments, err := c.List()
	var fe *client.FetchError
	switch {
	case errors.As(err, &fe):
		return writef(out, "Status:   ✗ unexpected response (%d %s)\n", fe.StatusCode, fe.Status)
	case err != nil:
		return writef(out, "Status:   ✗ cannot reach API (%v)\n", err)
	default:
		return writef(out, "Status:   ✓ reachable (%d comments)\n", len(comments))
	}
}
