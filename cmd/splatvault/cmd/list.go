/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assets",
	Long: `List all assets in the local asset store.

Example:
  splatvault list`,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening asset store: %v\n", err)
			return
		}
		defer store.Close()

		metas, err := store.List()
		if err != nil {
			fmt.Printf("Error listing assets: %v\n", err)
			return
		}

		if len(metas) == 0 {
			fmt.Println("No assets stored.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPOINTS\tSIZE\tCREATED")
		for _, meta := range metas {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				meta.ID, meta.Name, meta.PointCount, meta.SizeBytes,
				meta.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
