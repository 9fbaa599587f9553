package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-board/internal/board"
)

func newPostCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   `post --name <name> "text"`,
		Short: "Post a comment",
		Long:  "Post a comment to the board, then print the refreshed list.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(cmd, name, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name to post the comment under")

	return cmd
}

func runPost(cmd *cobra.Command, name, text string) error {
	b := board.New(newAPIClient())
	b.Name = name
	b.Text = text

	if !b.Submit() {
		return errors.New(strings.Join(b.Alerts(), "; "))
	}

	out := cmd.OutOrStdout()
	if !isJSON() {
		if _, err := fmt.Fprintln(out, "✓ Comment sent."); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	// The comment was accepted but the refreshed list could not be read.
	if b.Error != "" {
		return errors.New(b.Error)
	}

	if isJSON() {
		return printJSON(out, b.Comments)
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return printCommentTable(out, b.Comments)
}
