package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/evcraddock/comment-board/internal/comment"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writef writes formatted output, wrapping any write error.
func writef(out io.Writer, format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(out, format, args...); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// printCommentTable prints comments as a formatted table, in server order.
func printCommentTable(out io.Writer, comments []comment.Comment) error {
	if len(comments) == 0 {
		if _, err := fmt.Fprintln(out, "No comments yet."); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "#\tNAME\tCOMMENT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "-\t----\t-------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for i, c := range comments {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n",
			i+1, truncate(oneLine(c.Name), 24), truncate(oneLine(c.Comment), 60)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if _, err := fmt.Fprintf(out, "\nTotal: %d comments\n", len(comments)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// oneLine collapses runs of whitespace, including newlines, into single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
