/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skallerud/splatvault/pkg/ply"
	"github.com/skallerud/splatvault/pkg/splat"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspect a PLY file",
	Long: `Parse a binary little-endian PLY file and print its schema.

Example:
  splatvault inspect scene.ply`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		chunkBytes, _ := cmd.Flags().GetInt("chunk-bytes")

		f, err := os.Open(args[0])
		if err != nil {
			fmt.Printf("Error opening file: %v\n", err)
			return
		}
		defer f.Close()

		parser := ply.NewParser(ply.ParserConfig{Filter: splat.PropertyFilter()})
		schema, err := parser.Parse(context.Background(), ply.NewReaderSource(f, chunkBytes))
		if err != nil {
			fmt.Printf("Error parsing file: %v\n", err)
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, element := range schema.Elements {
			fmt.Fprintf(w, "element %s\t%d rows\t%d bytes/row\n",
				element.Name, element.Count, element.RowSize())
			for _, prop := range element.Properties {
				retained := ""
				if !prop.Retained() {
					retained = "(skipped)"
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", prop.Name, prop.Type, retained)
			}
		}
		w.Flush()

		cloud, err := splat.FromSchema(schema)
		if err != nil {
			fmt.Printf("\nNot a splat cloud: %v\n", err)
			return
		}
		min, max := cloud.Bounds()
		fmt.Printf("\npoints: %d\n", cloud.Count)
		fmt.Printf("bounds: min=%v max=%v\n", min, max)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Int("chunk-bytes", 0, "Read size for streaming the file (0 uses the default)")
}
