package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-board/internal/logging"
	"github.com/evcraddock/comment-board/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web board",
		Long:  "Start an HTTP server for the board. The comment API is resolved from the host each request was sent to, unless --api-url is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable debug logging")

	return cmd
}

func runServe(port int, dev bool) error {
	logging.Setup(dev)

	srv, err := web.NewServer(web.Config{APIURL: getAPIURL()})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(port)
}
