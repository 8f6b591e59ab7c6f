package cmd

import (
	"os"

	"github.com/thirteen37/flatconf"
	"github.com/thirteen37/flatconf/configmap"
	"github.com/thirteen37/flatconf/document"
	"github.com/thirteen37/flatconf/format"
)

// loadMap reads and flattens a document from a file path, or from
// stdin when source is "-" or empty.
func loadMap(source, from string, indexArrays bool) (configmap.Map, error) {
	opts := flatconf.LoadOptions{}
	if indexArrays {
		opts.Arrays = document.ArrayIndex
	}
	if from != "" {
		f, err := format.ParseFormat(from)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	}

	if source == "" || source == "-" {
		return flatconf.LoadReader(os.Stdin, opts)
	}
	return flatconf.Load(source, opts)
}

// saveMap writes the document rebuilt from m to a file path, or to
// stdout when dest is "-" or empty.
func saveMap(m configmap.Map, dest string, f format.Format) error {
	if dest == "" || dest == "-" {
		return flatconf.SaveWriter(m, os.Stdout, f)
	}
	return flatconf.Save(m, dest, f)
}

// outputFormat maps the --format flag value to a Format, defaulting to
// JSON when unset.
func outputFormat(name string) (format.Format, error) {
	if name == "" {
		return format.JSON, nil
	}
	return format.ParseFormat(name)
}
