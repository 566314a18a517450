/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skallerud/splatvault/pkg/ply"
	"github.com/skallerud/splatvault/pkg/splat"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a PLY file into the asset store",
	Long: `Parse a binary little-endian PLY file and store the decoded
splat cloud in the local asset store.

Example:
  splatvault import scene.ply --name=bonsai`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			return
		}
		defer f.Close()

		parser := ply.NewParser(ply.ParserConfig{Filter: splat.PropertyFilter()})
		schema, err := parser.Parse(context.Background(), ply.NewReaderSource(f, 0))
		if err != nil {
			fmt.Printf("Error parsing file: %v\n", err)
			return
		}

		cloud, err := splat.FromSchema(schema)
		if err != nil {
			fmt.Printf("Error extracting splat cloud: %v\n", err)
			return
		}

		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening asset store: %v\n", err)
			return
		}
		defer store.Close()

		meta, err := store.Put(name, cloud)
		if err != nil {
			fmt.Printf("Error storing asset: %v\n", err)
			return
		}

		fmt.Printf("Imported '%s' as %s (%d points)\n", name, meta.ID, meta.PointCount)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("name", "", "Asset name (defaults to the file name)")
}
