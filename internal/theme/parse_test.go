package theme

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    PropertyMap
		wantErr bool
	}{
		{
			name:    "single property",
			content: "windowBg: #ffffff;\n",
			want:    PropertyMap{"windowBg": "ffffff"},
		},
		{
			name: "comments and blank lines skipped",
			content: `// Sunset
// Generated by tdtint

windowBg: #17212b;
windowFg: #f5f5f5;
`,
			want: PropertyMap{"windowBg": "17212b", "windowFg": "f5f5f5"},
		},
		{
			name:    "whitespace tolerated",
			content: "  windowBg :   #ffffff ; \n",
			want:    PropertyMap{"windowBg": "ffffff"},
		},
		{
			name:    "alpha value kept",
			content: "msgSelectOverlay: #419fd94c;\n",
			want:    PropertyMap{"msgSelectOverlay": "419fd94c"},
		},
		{
			name:    "malformed value kept verbatim for the validator",
			content: "windowBg: red;\n",
			want:    PropertyMap{"windowBg": "red"},
		},
		{
			name:    "missing colon",
			content: "windowBg #ffffff;\n",
			wantErr: true,
		},
		{
			name:    "empty key",
			content: ": #ffffff;\n",
			wantErr: true,
		},
		{
			name:    "empty input",
			content: "",
			want:    PropertyMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Parse returned %d properties, want %d", len(got), len(tt.want))
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("Parse[%q] = %q, want %q", key, got[key], want)
				}
			}
		})
	}
}

func TestParseErrorNamesLine(t *testing.T) {
	_, err := Parse(strings.NewReader("windowBg: #ffffff;\nbroken line\n"))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}
