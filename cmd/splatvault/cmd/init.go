/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skallerud/splatvault/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize SplatVault for local development",
	Long: `Initialize SplatVault configuration and data directory.

This command will:
- Create the data directory
- Generate a secure API key
- Write a config file with secure permissions

Examples:
  splatvault init
  splatvault init --config=./splatvault.yaml --data-dir=./data`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		if dataDir == "" {
			dataDir = "./data"
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s. Use --force to reinitialize.\n", configPath)
			return
		}

		cmd.Printf("Initializing SplatVault...\n")
		cmd.Printf("Data directory: %s\n", dataDir)

		if err := os.MkdirAll(dataDir, 0750); err != nil {
			cmd.Printf("Error creating data directory: %v\n", err)
			os.Exit(1)
		}

		cfg, err := config.BootstrapConfig(configPath, dataDir)
		if err != nil {
			cmd.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("✅ SplatVault initialization completed successfully!\n")
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("Config file: %s\n", configPath)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  splatvault serve --config=%s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("config", "", "Path to write the config file (defaults to the platform config dir)")
	initCmd.Flags().Bool("force", false, "Force reinitialization even if a config already exists")
}
