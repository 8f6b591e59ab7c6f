// Package cmd provides the CLI commands for flatconf.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flatconf",
	Short: "Transcode nested config documents to and from flat key maps",
	Long: `flatconf bridges nested JSON/YAML configuration documents and flat
key=value maps. Nesting is encoded in the key with a double-underscore
separator, so {"database": {"host": "localhost"}} becomes
database__host=localhost.

All values are carried as strings, and document output is deterministic
with object keys sorted lexicographically.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(unflattenCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mergeCmd)
}
