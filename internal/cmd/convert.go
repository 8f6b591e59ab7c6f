package cmd

import (
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> [out]",
	Short: "Transcode a document between formats",
	Long: `Transcode a document by flattening it and rebuilding it in another
format. The whole value surface goes through the flat map, so scalar
types become strings and object keys come out sorted.

Reads <in> ("-" for stdin) and writes to [out] ("-" or omitted for
stdout).

Example:
  flatconf convert config.yaml config.json
  flatconf convert --from toml Cargo.toml --format yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

var (
	convertFrom   string
	convertFormat string
	convertArrays bool
)

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source format: json, yaml, toml or ini (default: detect)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "", "output format: json, yaml, toml or ini (default: json)")
	convertCmd.Flags().BoolVar(&convertArrays, "index-arrays", false, "flatten array elements under numeric index segments")
}

func runConvert(cmd *cobra.Command, args []string) error {
	m, err := loadMap(args[0], convertFrom, convertArrays)
	if err != nil {
		return err
	}

	dest := ""
	if len(args) == 2 {
		dest = args[1]
	}

	f, err := outputFormat(convertFormat)
	if err != nil {
		return err
	}
	return saveMap(m, dest, f)
}
