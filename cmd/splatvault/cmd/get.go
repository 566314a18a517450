/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a stored asset",
	Long: `Show metadata and bounds for a stored splat asset.

Example:
  splatvault get 2Z5KxQv9P8mG3bJc7W1n`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening asset store: %v\n", err)
			return
		}
		defer store.Close()

		cloud, meta, err := store.Get(args[0])
		if err != nil {
			fmt.Printf("Error getting asset: %v\n", err)
			return
		}

		min, max := cloud.Bounds()
		fmt.Printf("id:      %s\n", meta.ID)
		fmt.Printf("name:    %s\n", meta.Name)
		fmt.Printf("points:  %d\n", meta.PointCount)
		fmt.Printf("size:    %d bytes\n", meta.SizeBytes)
		fmt.Printf("created: %s\n", meta.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("bounds:  min=%v max=%v\n", min, max)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
