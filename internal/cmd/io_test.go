package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thirteen37/flatconf/format"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    format.Format
		wantErr bool
	}{
		{"", format.JSON, false},
		{"json", format.JSON, false},
		{"yaml", format.YAML, false},
		{"toml", format.TOML, false},
		{"ini", format.INI, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := outputFormat(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("outputFormat(%q) = %v, want error", tt.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("outputFormat(%q) unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("outputFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Every command that reads a document exposes the same array policy
// flag with the same strict default.
func TestIndexArraysFlagConsistency(t *testing.T) {
	for _, c := range []*cobra.Command{flattenCmd, convertCmd, getCmd, checkCmd, mergeCmd} {
		f := c.Flags().Lookup("index-arrays")
		if f == nil {
			t.Errorf("%s: missing --index-arrays flag", c.Name())
			continue
		}
		if f.DefValue != "false" {
			t.Errorf("%s: --index-arrays default = %q, want false", c.Name(), f.DefValue)
		}
	}
}

func TestLoadMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"a": {"b": "c"}, "list": [1, 2]}`), 0644); err != nil {
		t.Fatal(err)
	}

	// Arrays rejected under the strict policy.
	if _, err := loadMap(path, "", false); err == nil {
		t.Error("loadMap() with strict arrays succeeded, want error")
	}

	m, err := loadMap(path, "", true)
	if err != nil {
		t.Fatalf("loadMap() unexpected error: %v", err)
	}
	if v, _ := m.Get("a__b"); v != "c" {
		t.Errorf("a__b = %q, want c", v)
	}
	if v, _ := m.Get("list__1"); v != "2" {
		t.Errorf("list__1 = %q, want 2", v)
	}

	if _, err := loadMap(path, "xml", false); err == nil {
		t.Error("loadMap() with bad format name succeeded, want error")
	}
}
