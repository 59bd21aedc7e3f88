package game

import "testing"

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Code
		wantErr bool
	}{
		{
			name: "plain",
			line: "1 2 3 4",
			want: Code{1, 2, 3, 4},
		},
		{
			name: "extra whitespace",
			line: "  0\t7  3   9 ",
			want: Code{0, 7, 3, 9},
		},
		{
			name: "out of range values are accepted",
			line: "42 -1 0 100",
			want: Code{42, -1, 0, 100},
		},
		{
			name:    "too few",
			line:    "1 2 3",
			wantErr: true,
		},
		{
			name:    "too many",
			line:    "1 2 3 4 5",
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
		{
			name:    "not a number",
			line:    "1 2 x 4",
			wantErr: true,
		},
		{
			name:    "float",
			line:    "1 2 3 4.5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCode(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCode(%q) expected error, got %v", tt.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCode(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseCode(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCodeString(t *testing.T) {
	c := Code{3, 1, 4, 1}
	if got := c.String(); got != "3 1 4 1" {
		t.Errorf("String() = %q, want %q", got, "3 1 4 1")
	}
}
