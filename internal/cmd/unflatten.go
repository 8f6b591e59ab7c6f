package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thirteen37/flatconf/configmap"
)

var unflattenCmd = &cobra.Command{
	Use:   "unflatten [file]",
	Short: "Rebuild a document from key=value lines",
	Long: `Rebuild a nested document from key=value lines.

Reads lines from the named file, or from stdin when the file is omitted
or given as "-". The document goes to stdout, or to --output atomically.

Example:
  flatconf flatten config.json | flatconf unflatten --format yaml
  flatconf unflatten keys.txt -o config.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnflatten,
}

var (
	unflattenOutput string
	unflattenFormat string
)

func init() {
	unflattenCmd.Flags().StringVarP(&unflattenOutput, "output", "o", "", "destination file (default: stdout)")
	unflattenCmd.Flags().StringVar(&unflattenFormat, "format", "", "output format: json, yaml, toml or ini (default: json)")
}

func runUnflatten(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	m, err := configmap.ParseLines(in)
	if err != nil {
		return err
	}

	f, err := outputFormat(unflattenFormat)
	if err != nil {
		return err
	}
	return saveMap(m, unflattenOutput, f)
}
