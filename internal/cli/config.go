package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"panewm/internal/config"
)

// NewConfigCmd groups the configuration helper commands.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect panewm configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(cli.Config, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}
			cmd.Println(string(data))
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file in use",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := NewCLI(); err != nil {
				return err
			}
			cmd.Println(config.ConfigFilePath())
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration and write it to disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := NewCLI(); err != nil {
				return err
			}
			if err := config.Reset(); err != nil {
				return err
			}
			cmd.Println("configuration reset:", config.ConfigFilePath())
			return nil
		},
	}

	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(pathCmd)
	configCmd.AddCommand(schemaCmd)
	configCmd.AddCommand(resetCmd)

	return configCmd
}
