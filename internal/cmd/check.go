package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thirteen37/flatconf/configmap"
)

var checkCmd = &cobra.Command{
	Use:   "check <file> <key>...",
	Short: "Verify that required keys are present",
	Long: `Verify that a document contains every required flat key. All missing
keys are reported, not just the first.

Example:
  flatconf check config.json database__host database__port`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

var (
	checkFrom   string
	checkArrays bool
)

func init() {
	checkCmd.Flags().StringVar(&checkFrom, "from", "", "source format: json, yaml, toml or ini (default: detect)")
	checkCmd.Flags().BoolVar(&checkArrays, "index-arrays", false, "flatten array elements under numeric index segments")
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, err := loadMap(args[0], checkFrom, checkArrays)
	if err != nil {
		return err
	}

	err = m.ValidateRequired(args[1:])
	var missing *configmap.MissingKeysError
	if errors.As(err, &missing) {
		for _, k := range missing.Keys {
			fmt.Fprintf(os.Stderr, "missing: %s\n", k)
		}
		return fmt.Errorf("%d required key(s) missing", len(missing.Keys))
	}
	return err
}
