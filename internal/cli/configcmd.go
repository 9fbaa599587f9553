package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change stored settings",
		Long:  "Show or change the settings stored in ~/.config/cb/config.yaml.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored settings",
			Args:  cobra.NoArgs,
			RunE:  runConfigShow,
		},
		&cobra.Command{
			Use:   "set <host|api-url> <value>",
			Short: "Store a setting",
			Long:  "Store a setting. Pass an empty value to clear it.",
			Args:  cobra.ExactArgs(2),
			RunE:  runConfigSet,
		},
	)

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), cfg)
	}

	return writef(cmd.OutOrStdout(), "host:    %s\napi-url: %s\n",
		valueOrUnset(cfg.Host), valueOrUnset(cfg.APIURL))
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "host":
		cfg.Host = value
	case "api-url":
		cfg.APIURL = value
	default:
		return fmt.Errorf("unknown setting %q (want host or api-url)", key)
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	return writef(cmd.OutOrStdout(), "✓ %s saved.\n", key)
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
