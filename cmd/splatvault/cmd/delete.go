/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored asset",
	Long: `Delete an asset from the local asset store.

Example:
  splatvault delete 2Z5KxQv9P8mG3bJc7W1n`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening asset store: %v\n", err)
			return
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			fmt.Printf("Error deleting asset: %v\n", err)
			return
		}

		fmt.Printf("Successfully deleted asset '%s'\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
