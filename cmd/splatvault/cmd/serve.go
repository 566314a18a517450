/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/skallerud/splatvault/pkg/api"
	"github.com/skallerud/splatvault/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the SplatVault REST API server.

Settings are read from the config file when one exists, with
command-line flags taking precedence.

Examples:
  splatvault serve --api-key=mysecretkey --port=8080
  splatvault serve --config=./splatvault.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")
		configPath, _ := cmd.Flags().GetString("config")
		dataDir, _ := cmd.Flags().GetString("data-dir")

		cfg := config.DefaultConfig()
		if configPath == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
			configPath = config.GetDefaultConfigPath()
		}
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading config: %v\n", err)
				return
			}
			cfg = loaded
		}

		// Flags override config file values
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind = bind
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = dataDir
		}
		if apiKey != "" {
			cfg.Security.APIKey = apiKey
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			cmd.Println("Error: no API key configured (use --api-key or run 'splatvault init' first)")
			return
		}

		store, err := assetStoreAt(cfg.DataDir)
		if err != nil {
			cmd.Printf("Error opening asset store: %v\n", err)
			return
		}
		defer store.Close()

		serverConfig := api.ServerConfig{
			Port:           cfg.Port,
			Bind:           cfg.Bind,
			APIKey:         cfg.Security.APIKey,
			MaxHeaderBytes: cfg.Parser.MaxHeaderBytes,
			ChunkBytes:     cfg.Parser.ChunkBytes,
		}

		if container == nil {
			cmd.Println("Error: dependency container not initialized")
			return
		}

		starter := container.GetServerFactory().CreateServerStarter()
		if err := starter.StartServer(store, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind the server to")
	serveCmd.Flags().String("api-key", "", "API key for authentication")
	serveCmd.Flags().String("config", "", "Path to a config file")
}
