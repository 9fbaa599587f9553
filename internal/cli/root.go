// Package cli defines the cobra command tree for comment-board.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-board/internal/client"
	"github.com/evcraddock/comment-board/internal/logging"
)

var (
	flagFormat  string
	flagHost    string
	flagAPIURL  string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cb",
		Short:         "Read and post comments on the comment board",
		Long:          "A client for the comment board. Lists and posts comments against the comment API resolved from the board's host name, and serves the board as a web page.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagVerbose {
				logging.Setup(true)
			} else {
				slog.SetDefault(slog.New(slog.DiscardHandler))
			}
			return loadEnvFile()
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagHost, "host", "", "host name the board is served on (default: localhost)")
	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "comment API URL, skipping host resolution")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newListCmd(),
		newPostCmd(),
		newResolveCmd(),
		newServeCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the comment API.
func newAPIClient() *client.Client {
	if u := getAPIURL(); u != "" {
		return client.NewWithEndpoint(u)
	}
	return client.New(getHost())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
