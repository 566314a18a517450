/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/skallerud/splatvault/pkg/assets"
	"github.com/skallerud/splatvault/pkg/di"

	"github.com/spf13/cobra"
)

// container holds the dependency injection container for the cmd package
var container *di.Container

// SetContainer injects the dependency container into the cmd package
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "splatvault",
	Short: "SplatVault - Gaussian splat asset store",
	Long: `SplatVault parses binary little-endian PLY point clouds,
stores the decoded splat data in a local database, and serves
it over a REST API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global data directory flag
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the asset store")
}

// openStore opens the asset store under the command's data directory
func openStore(cmd *cobra.Command) (*assets.AssetStore, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	return assetStoreAt(dataDir)
}

// assetStoreAt opens the asset store rooted at the given directory
func assetStoreAt(dataDir string) (*assets.AssetStore, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, err
	}
	return assets.NewAssetStore(dataDir)
}
