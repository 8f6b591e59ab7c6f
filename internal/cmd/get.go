package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print one flattened value",
	Long: `Print the value at a flat key in a document.

Example:
  flatconf get config.json database__host`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

var (
	getFrom   string
	getArrays bool
)

func init() {
	getCmd.Flags().StringVar(&getFrom, "from", "", "source format: json, yaml, toml or ini (default: detect)")
	getCmd.Flags().BoolVar(&getArrays, "index-arrays", false, "flatten array elements under numeric index segments")
}

func runGet(cmd *cobra.Command, args []string) error {
	m, err := loadMap(args[0], getFrom, getArrays)
	if err != nil {
		return err
	}

	value, ok := m.Get(args[1])
	if !ok {
		return fmt.Errorf("key %q not found in %s", args[1], args[0])
	}
	fmt.Println(value)
	return nil
}
