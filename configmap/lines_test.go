package configmap

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseLines(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Map
		wantErr bool
	}{
		{
			name:  "basic lines",
			input: "a=1\nb__c=2\n",
			want:  Map{"a": "1", "b__c": "2"},
		},
		{
			name:  "blank lines and comments skipped",
			input: "\n# comment\na=1\n\n",
			want:  Map{"a": "1"},
		},
		{
			name:  "value keeps embedded equals",
			input: "url=http://host?x=1\n",
			want:  Map{"url": "http://host?x=1"},
		},
		{
			name:  "value taken verbatim",
			input: "msg= spaced \"quoted\" $value\n",
			want:  Map{"msg": ` spaced "quoted" $value`},
		},
		{
			name:  "empty value",
			input: "empty=\n",
			want:  Map{"empty": ""},
		},
		{
			name:    "missing equals",
			input:   "not a pair\n",
			wantErr: true,
		},
		{
			name:    "empty key",
			input:   "=value\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLines(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLines() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLines() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ParseLines must invert Fprint.
func TestParseLinesFprintRoundTrip(t *testing.T) {
	m := Map{"a": "1", "b__c": `value with "quotes" and $dollar`, "empty": ""}

	var buf strings.Builder
	if err := m.Fprint(&buf); err != nil {
		t.Fatalf("Fprint() unexpected error: %v", err)
	}

	got, err := ParseLines(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ParseLines() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip = %v, want %v", got, m)
	}
}
