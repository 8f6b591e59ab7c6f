package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Flatten a document into key=value lines",
	Long: `Flatten a JSON or YAML document into sorted key=value lines.

Reads from the named file, or from stdin when the file is omitted or
given as "-". The source format is detected by content; use --from for
TOML or INI sources.

Example:
  flatconf flatten config.yaml
  cat config.json | flatconf flatten`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFlatten,
}

var (
	flattenFrom   string
	flattenArrays bool
)

func init() {
	flattenCmd.Flags().StringVar(&flattenFrom, "from", "", "source format: json, yaml, toml or ini (default: detect)")
	flattenCmd.Flags().BoolVar(&flattenArrays, "index-arrays", false, "flatten array elements under numeric index segments")
}

func runFlatten(cmd *cobra.Command, args []string) error {
	source := ""
	if len(args) == 1 {
		source = args[0]
	}

	m, err := loadMap(source, flattenFrom, flattenArrays)
	if err != nil {
		return err
	}

	return m.Fprint(os.Stdout)
}
