package configmap

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestGetSetDelete(t *testing.T) {
	m := New()

	if _, ok := m.Get("absent"); ok {
		t.Error("Get() on empty map reported a value present")
	}

	m.Set("key", "value")
	if v, ok := m.Get("key"); !ok || v != "value" {
		t.Errorf("Get(key) = %q, %v, want value, true", v, ok)
	}

	m.Set("key", "replaced")
	if v, _ := m.Get("key"); v != "replaced" {
		t.Errorf("Set() did not overwrite: got %q", v)
	}

	m.Delete("key")
	if _, ok := m.Get("key"); ok {
		t.Error("Delete() left the key present")
	}

	// Deleting an absent key must not panic or error.
	m.Delete("never-set")
}

func TestKeysSorted(t *testing.T) {
	m := Map{"zebra": "1", "apple": "2", "mango": "3"}

	var got []string
	for k := range m.Keys() {
		got = append(got, k)
	}

	want := []string{"apple", "mango", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestKeysRestartable(t *testing.T) {
	m := Map{"a": "1", "b": "2"}

	seq := m.Keys()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Keys() second pass = %v, want %v", second, first)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		dest   Map
		src    Map
		prefix string
		want   Map
	}{
		{
			name: "right bias on shared key",
			dest: Map{"k": "dest", "only": "dest"},
			src:  Map{"k": "src"},
			want: Map{"k": "src", "only": "dest"},
		},
		{
			name: "empty src leaves dest unchanged",
			dest: Map{"a": "1", "b": "2"},
			src:  Map{},
			want: Map{"a": "1", "b": "2"},
		},
		{
			name:   "prefix applied to every src key",
			dest:   Map{"existing": "x"},
			src:    Map{"host": "localhost", "port": "5432"},
			prefix: "database__",
			want: Map{
				"existing":       "x",
				"database__host": "localhost",
				"database__port": "5432",
			},
		},
		{
			name:   "prefixed key overwrites existing dest entry",
			dest:   Map{"app__name": "old"},
			src:    Map{"name": "new"},
			prefix: "app__",
			want:   Map{"app__name": "new"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcCopy := tt.src.Clone()
			tt.dest.Merge(tt.src, tt.prefix)
			if !reflect.DeepEqual(tt.dest, tt.want) {
				t.Errorf("Merge() dest = %v, want %v", tt.dest, tt.want)
			}
			if !reflect.DeepEqual(tt.src, srcCopy) {
				t.Errorf("Merge() modified src: %v", tt.src)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name        string
		m           Map
		required    []string
		wantMissing []string
	}{
		{
			name:     "all present",
			m:        Map{"a": "1", "b": "2"},
			required: []string{"a", "b"},
		},
		{
			name:        "reports all missing keys",
			m:           Map{"b": "2"},
			required:    []string{"a", "b", "c"},
			wantMissing: []string{"a", "c"},
		},
		{
			name:        "single missing key",
			m:           Map{"present": "value"},
			required:    []string{"present", "missing"},
			wantMissing: []string{"missing"},
		},
		{
			name:     "empty value still counts as present",
			m:        Map{"empty": ""},
			required: []string{"empty"},
		},
		{
			name:     "no required keys",
			m:        Map{},
			required: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.ValidateRequired(tt.required)
			if tt.wantMissing == nil {
				if err != nil {
					t.Fatalf("ValidateRequired() unexpected error: %v", err)
				}
				return
			}
			var missing *MissingKeysError
			if !errors.As(err, &missing) {
				t.Fatalf("ValidateRequired() error = %v, want *MissingKeysError", err)
			}
			if !reflect.DeepEqual(missing.Keys, tt.wantMissing) {
				t.Errorf("ValidateRequired() missing = %v, want %v", missing.Keys, tt.wantMissing)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	m := Map{"b__c": "2", "a": "1"}

	var buf strings.Builder
	if err := m.Fprint(&buf); err != nil {
		t.Fatalf("Fprint() unexpected error: %v", err)
	}

	want := "a=1\nb__c=2\n"
	if buf.String() != want {
		t.Errorf("Fprint() = %q, want %q", buf.String(), want)
	}
}
