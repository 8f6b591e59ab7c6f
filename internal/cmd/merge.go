package cmd

import (
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <dest> <src>",
	Short: "Merge two documents",
	Long: `Merge the flattened keys of <src> into <dest> and output the combined
document. On shared keys the value from <src> wins. With --prefix,
every key from <src> lands under that prefix.

Example:
  flatconf merge base.json override.json
  flatconf merge app.json db.json --prefix database__ -o merged.json`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

var (
	mergePrefix string
	mergeOutput string
	mergeFormat string
	mergeFrom   string
	mergeArrays bool
)

func init() {
	mergeCmd.Flags().StringVar(&mergePrefix, "prefix", "", "prefix prepended to every key from <src>")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "destination file (default: stdout)")
	mergeCmd.Flags().StringVar(&mergeFormat, "format", "", "output format: json, yaml, toml or ini (default: json)")
	mergeCmd.Flags().StringVar(&mergeFrom, "from", "", "source format: json, yaml, toml or ini (default: detect)")
	mergeCmd.Flags().BoolVar(&mergeArrays, "index-arrays", false, "flatten array elements under numeric index segments")
}

func runMerge(cmd *cobra.Command, args []string) error {
	dest, err := loadMap(args[0], mergeFrom, mergeArrays)
	if err != nil {
		return err
	}
	src, err := loadMap(args[1], mergeFrom, mergeArrays)
	if err != nil {
		return err
	}

	dest.Merge(src, mergePrefix)

	f, err := outputFormat(mergeFormat)
	if err != nil {
		return err
	}
	return saveMap(dest, mergeOutput, f)
}
